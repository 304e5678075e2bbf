package ws

import (
	"encoding/json"
	"time"

	"skillswap/internal/domain/notification"

	"github.com/google/uuid"
)

type notificationEvent struct {
	Type         string    `json:"type"`
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Notification string    `json:"notification_type"`
	Timestamp    string    `json:"timestamp"`
}

// Notifier pushes stored notifications to their owner's live
// connections.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyUser(userID uuid.UUID, notif notification.Notification) {
	if n == nil || n.hub == nil {
		return
	}

	evt := notificationEvent{
		Type:         "notification",
		ID:           notif.ID,
		Title:        notif.Title,
		Message:      notif.Message,
		Notification: string(notif.Type),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Send(userID, b)
}
