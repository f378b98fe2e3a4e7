package domain

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID        GroupID   `json:"id"`
	Name      string    `json:"name"`
	OwnerID   UserID    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

type Member struct {
	GroupID  GroupID    `json:"group_id"`
	UserID   UserID     `json:"user_id"`
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

// ChatMessage is immutable once stored. Content is already censored.
type ChatMessage struct {
	ID            uuid.UUID `json:"id"`
	GroupID       GroupID   `json:"group_id"`
	SenderID      UserID    `json:"sender_id"`
	Content       string    `json:"content"`
	Lang          string    `json:"lang,omitempty"`
	CensoredWords []string  `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
