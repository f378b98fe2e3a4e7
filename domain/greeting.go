// Package domain contains core concepts of the greeting system.
// This file defines the Greeting entity and its lifecycle rules.
package domain

import "time"

type GreetingID string

type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

type RecipientType string

const (
	RecipientUser  RecipientType = "user"
	RecipientGroup RecipientType = "group"
)

type Media struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`
}

type Greeting struct {
	ID            GreetingID    `json:"id"`
	SenderID      UserID        `json:"sender_id"`
	RecipientType RecipientType `json:"recipient_type"`
	RecipientID   string        `json:"recipient_id"`
	Message       string        `json:"message"`
	Media         *Media        `json:"media,omitempty"`
	Status        Status        `json:"status"`
	ScheduledAt   *time.Time    `json:"scheduled_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// RecipientTarget returns the broadcast channel of whoever the greeting is addressed to.
func (g Greeting) RecipientTarget() Target {
	if g.RecipientType == RecipientGroup {
		return GroupTarget(GroupID(g.RecipientID))
	}
	return UserTarget(UserID(g.RecipientID))
}

func (g Greeting) SenderTarget() Target {
	return UserTarget(g.SenderID)
}

// transitions lists every allowed edge. delivered and failed have none.
var transitions = map[Status][]Status{
	StatusPending: {StatusSent, StatusFailed},
	StatusSent:    {StatusDelivered, StatusFailed},
}

// InitialStatus decides the status a greeting is created with.
func InitialStatus(now time.Time, scheduledAt *time.Time) Status {
	if scheduledAt != nil && scheduledAt.After(now) {
		return StatusPending
	}
	return StatusSent
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusDelivered, StatusFailed:
		return true
	}
	return false
}
