// Package domain contains core concepts of the greeting system.
// This file defines identities, targets and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "slices"

type UserID string

type GroupID string

type ConnectionID string

const RoleAdmin = "admin"

// Identity is resolved once when a connection is established and never changes afterwards.
type Identity struct {
	UserID UserID
	Roles  []string
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}

func (i Identity) IsAdmin() bool {
	return slices.Contains(i.Roles, RoleAdmin)
}

type TargetType string

const (
	TargetUser  TargetType = "user"
	TargetGroup TargetType = "group"
)

// Target selects a broadcast channel: the personal channel of a user or the channel of a group.
type Target struct {
	Type TargetType `json:"type"`
	ID   string     `json:"id"`
}

func UserTarget(id UserID) Target {
	return Target{Type: TargetUser, ID: string(id)}
}

func GroupTarget(id GroupID) Target {
	return Target{Type: TargetGroup, ID: string(id)}
}

// Key is a stable string used for sharding and logging.
func (t Target) Key() string {
	return string(t.Type) + ":" + t.ID
}

func (t Target) IsValid() bool {
	return (t.Type == TargetUser || t.Type == TargetGroup) && t.ID != ""
}
