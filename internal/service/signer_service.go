package service

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"custodial-voucher/internal/core/domain"

	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"golang.org/x/crypto/blake2b"
)

// signingDomain separates voucher digests from any other message the admin key signs.
const signingDomain = "voucher/v1"

// Ed25519VoucherSigner implements ports.VoucherSigner with the admin key.
// The key is loaded once at startup and only read afterwards.
type Ed25519VoucherSigner struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// NewEd25519VoucherSigner parses the configured admin key: a 32-byte hex seed,
// a 64-byte hex private key, or a 25-word Algorand mnemonic.
func NewEd25519VoucherSigner(key string) (*Ed25519VoucherSigner, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: signing key is not set", domain.ErrConfiguration)
	}

	priv, err := parseSigningKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	return &Ed25519VoucherSigner{
		privateKey: priv,
		publicKey:  priv.Public().(ed25519.PublicKey),
	}, nil
}

func parseSigningKey(key string) (ed25519.PrivateKey, error) {
	if strings.Contains(key, " ") {
		priv, err := mnemonic.ToPrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("signing key mnemonic is invalid")
		}
		return priv, nil
	}

	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("signing key is neither hex nor a mnemonic")
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		priv := ed25519.PrivateKey(raw)
		// The trailing half must be the public key of the seed.
		if !priv.Public().(ed25519.PublicKey).Equal(ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize]).Public()) {
			return nil, fmt.Errorf("signing key halves do not match")
		}
		return priv, nil
	default:
		return nil, fmt.Errorf("signing key must be %d or %d bytes, got %d", ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

// Sign returns the base64 Ed25519 signature over the voucher digest.
func (s *Ed25519VoucherSigner) Sign(v *domain.Voucher) (string, error) {
	if s == nil || len(s.privateKey) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("%w: signer has no key", domain.ErrConfiguration)
	}
	digest := voucherDigest(v)
	return base64.StdEncoding.EncodeToString(ed25519.Sign(s.privateKey, digest[:])), nil
}

// Verify reports whether signature is the admin signature over v. Any
// malformed input yields false.
func (s *Ed25519VoucherSigner) Verify(v *domain.Voucher, signature string) bool {
	return verifyVoucher(s.publicKey, v, signature)
}

// PublicKey returns the verifying key consumed by the ledger.
func (s *Ed25519VoucherSigner) PublicKey() ed25519.PublicKey {
	return s.publicKey
}

// Address returns the chain address of the admin signing identity.
func (s *Ed25519VoucherSigner) Address() string {
	addr, _ := deriveAddress(s.publicKey)
	return addr
}

func verifyVoucher(pub ed25519.PublicKey, v *domain.Voucher, signature string) bool {
	if v == nil || len(pub) != ed25519.PublicKeySize {
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	digest := voucherDigest(v)
	return ed25519.Verify(pub, digest[:], sig)
}

func voucherDigest(v *domain.Voucher) [blake2b.Size256]byte {
	payload := CanonicalPayload(v)
	msg := make([]byte, 0, len(signingDomain)+len(payload))
	msg = append(msg, signingDomain...)
	msg = append(msg, payload...)
	return blake2b.Sum256(msg)
}
