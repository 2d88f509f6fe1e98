package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustodialWallet is a keypair held by the backend on behalf of a user.
// Exactly one exists per user and its address never changes.
type CustodialWallet struct {
	UserID              uuid.UUID `json:"user_id"`
	Address             string    `json:"address"`
	PrivateKeyEncrypted string    `json:"-"` // vault envelope, never expose
	CreatedAt           time.Time `json:"created_at"`
}

// GeneratedKeypair is the one-shot output of the wallet generator.
// PrivateKey must be sealed by the vault immediately and then dropped.
type GeneratedKeypair struct {
	Address    string
	PublicKey  []byte
	PrivateKey []byte
}

// Zero wipes the private key in place.
func (k *GeneratedKeypair) Zero() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
}
