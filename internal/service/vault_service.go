package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"custodial-voucher/internal/core/domain"
)

const (
	vaultKeySize   = 32 // AES-256
	gcmNonceSize   = 12
	gcmTagSize     = 16
	envelopeV1     = "v1"
	envelopeFields = 4 // version, iv, tag, ciphertext
)

// Seal encrypts plaintext with AES-256-GCM under key using a fresh IV from
// crypto/rand. The envelope is "v1:<iv>:<tag>:<ciphertext>", all hex.
func Seal(plaintext, key []byte) (string, error) {
	return seal(rand.Reader, plaintext, key)
}

func seal(entropy io.Reader, plaintext, key []byte) (string, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(entropy, iv); err != nil {
		return "", fmt.Errorf("%w: generating iv: %v", domain.ErrRandomnessUnavailable, err)
	}

	sealed := aesGCM.Seal(nil, iv, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-gcmTagSize], sealed[len(sealed)-gcmTagSize:]

	return strings.Join([]string{
		envelopeV1,
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, ":"), nil
}

// Open parses and decrypts an envelope produced by Seal. A tag mismatch
// returns domain.ErrAuthentication and no plaintext.
func Open(envelope string, key []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv, tag, ciphertext, err := parseEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aesGCM.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != vaultKeySize {
		return nil, fmt.Errorf("%w: AES key must be %d bytes, got %d", domain.ErrInvalidKeyLength, vaultKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aesGCM, nil
}

func parseEnvelope(envelope string) (iv, tag, ciphertext []byte, err error) {
	parts := strings.Split(envelope, ":")
	if len(parts) != envelopeFields {
		return nil, nil, nil, fmt.Errorf("%w: expected %d fields, got %d", domain.ErrMalformedEnvelope, envelopeFields, len(parts))
	}
	if parts[0] != envelopeV1 {
		return nil, nil, nil, fmt.Errorf("%w: unsupported version %q", domain.ErrMalformedEnvelope, parts[0])
	}

	if iv, err = hex.DecodeString(parts[1]); err != nil || len(iv) != gcmNonceSize {
		return nil, nil, nil, fmt.Errorf("%w: bad iv", domain.ErrMalformedEnvelope)
	}
	if tag, err = hex.DecodeString(parts[2]); err != nil || len(tag) != gcmTagSize {
		return nil, nil, nil, fmt.Errorf("%w: bad tag", domain.ErrMalformedEnvelope)
	}
	if ciphertext, err = hex.DecodeString(parts[3]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: bad ciphertext", domain.ErrMalformedEnvelope)
	}
	return iv, tag, ciphertext, nil
}

// AESVault implements ports.Vault with a key fixed at startup.
type AESVault struct {
	key     []byte
	entropy io.Reader
}

// NewAESVault creates a vault from a 64-character hex key.
// An empty key is a configuration error; a key of the wrong size is rejected loudly.
func NewAESVault(hexKey string) (*AESVault, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("%w: vault key is not set", domain.ErrConfiguration)
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: vault key is not valid hex", domain.ErrConfiguration)
	}
	if len(key) != vaultKeySize {
		return nil, fmt.Errorf("%w: AES key must be %d bytes, got %d", domain.ErrInvalidKeyLength, vaultKeySize, len(key))
	}
	return &AESVault{key: key, entropy: rand.Reader}, nil
}

// Encrypt seals plaintext into a versioned envelope.
func (v *AESVault) Encrypt(plaintext []byte) (string, error) {
	return seal(v.entropy, plaintext, v.key)
}

// Decrypt opens an envelope sealed under the vault key.
func (v *AESVault) Decrypt(envelope string) ([]byte, error) {
	return Open(envelope, v.key)
}
