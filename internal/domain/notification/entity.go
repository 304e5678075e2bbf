package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeMatch    Type = "match"
	TypeRequest  Type = "request"
	TypeCredit   Type = "credit"
	TypeFeedback Type = "feedback"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      Type
	IsRead    bool
	CreatedAt time.Time
}
