package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"custodial-voucher/internal/core/domain"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

// Ed25519WalletGenerator implements ports.WalletGenerator. Addresses follow the
// Algorand rule: base32(publicKey || last 4 bytes of SHA-512/256(publicKey)).
type Ed25519WalletGenerator struct {
	entropy io.Reader
}

// NewEd25519WalletGenerator creates a generator reading from crypto/rand.
func NewEd25519WalletGenerator() *Ed25519WalletGenerator {
	return &Ed25519WalletGenerator{entropy: rand.Reader}
}

// Generate creates a fresh keypair. The private key is the 64-byte
// seed||public form and is returned exactly once.
func (g *Ed25519WalletGenerator) Generate() (*domain.GeneratedKeypair, error) {
	pub, priv, err := ed25519.GenerateKey(g.entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRandomnessUnavailable, err)
	}

	address, err := g.DeriveAddress(pub)
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedKeypair{
		Address:    address,
		PublicKey:  pub,
		PrivateKey: priv,
	}, nil
}

// DeriveAddress maps a public key to its chain address.
func (g *Ed25519WalletGenerator) DeriveAddress(publicKey []byte) (string, error) {
	return deriveAddress(publicKey)
}

func deriveAddress(publicKey []byte) (string, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return "", fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(publicKey))
	}
	var addr types.Address
	copy(addr[:], publicKey)
	return addr.String(), nil
}

// addressOfPrivateKey recomputes the address bound to a 64-byte private key.
func addressOfPrivateKey(privateKey []byte) (string, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey))
	}
	return deriveAddress(ed25519.PrivateKey(privateKey).Public().(ed25519.PublicKey))
}
