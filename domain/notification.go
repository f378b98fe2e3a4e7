package domain

import "time"

type NotificationID string

// Notification is the durable counterpart of a realtime push.
// ReadAt is set exactly once.
type Notification struct {
	ID         NotificationID `json:"id"`
	UserID     UserID         `json:"user_id"`
	GreetingID *GreetingID    `json:"greeting_id,omitempty"`
	Message    string         `json:"message"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}
