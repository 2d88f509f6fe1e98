package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionVoucherIssued     AuditAction = "VOUCHER_ISSUED"
	AuditActionVoucherReused     AuditAction = "VOUCHER_REUSED"
	AuditActionMintConfirmed     AuditAction = "MINT_CONFIRMED"
	AuditActionWalletProvisioned AuditAction = "WALLET_PROVISIONED"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       *uuid.UUID  `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time   `json:"created_at"`
}

// NewAuditLog builds an entry stamped with a fresh id and the current time.
func NewAuditLog(userID uuid.UUID, action AuditAction, resourceType, resourceID string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New(),
		UserID:       &userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	}
}
