package credit

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeEarned          TransactionType = "earned"
	TypeSpent           TransactionType = "spent"
	TypeAdminAdjustment TransactionType = "admin_adjustment"
)

// Transaction is an append-only ledger row. Amount is a signed delta
// against the user's balance; the ledger itself is never rewritten.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        int
	Type          TransactionType
	Description   string
	SwapRequestID *uuid.UUID
	CreatedAt     time.Time
}
