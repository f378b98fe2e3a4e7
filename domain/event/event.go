package event

import (
	"encoding/json"
	"greeting-hub/domain"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	GreetingCreatedKind       Kind = "greeting_created"
	GreetingStatusChangedKind Kind = "greeting_status_changed"
	GreetingRemovedKind       Kind = "greeting_removed"
	GroupMessageKind          Kind = "group_message"
	MemberJoinedKind          Kind = "member_joined"
	ModerationActionKind      Kind = "moderation_action"
)

// Payload is a closed set: only the types of this package implement it.
// Consumers switch on the concrete type.
type Payload interface {
	Kind() Kind
	isPayload()
}

// Event is ephemeral: constructed, dispatched, discarded.
type Event struct {
	ID      uuid.UUID
	Target  domain.Target
	Payload Payload
	At      time.Time
}

func New(target domain.Target, payload Payload, at time.Time) Event {
	return Event{ID: uuid.New(), Target: target, Payload: payload, At: at}
}

func (e Event) Kind() Kind {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.Kind()
}

type wireEvent struct {
	ID      string        `json:"id"`
	Kind    Kind          `json:"kind"`
	Target  domain.Target `json:"target"`
	Payload Payload       `json:"payload"`
	At      time.Time     `json:"at"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEvent{
		ID:      e.ID.String(),
		Kind:    e.Kind(),
		Target:  e.Target,
		Payload: e.Payload,
		At:      e.At,
	})
}

type GreetingCreated struct {
	Greeting     domain.Greeting      `json:"greeting"`
	Notification *domain.Notification `json:"notification,omitempty"`
}

func (GreetingCreated) Kind() Kind { return GreetingCreatedKind }
func (GreetingCreated) isPayload() {}

type GreetingStatusChanged struct {
	Greeting domain.Greeting `json:"greeting"`
	Previous domain.Status   `json:"previous"`
}

func (GreetingStatusChanged) Kind() Kind { return GreetingStatusChangedKind }
func (GreetingStatusChanged) isPayload() {}

type GreetingRemoved struct {
	GreetingID domain.GreetingID `json:"greeting_id"`
	SenderID   domain.UserID     `json:"sender_id"`
}

func (GreetingRemoved) Kind() Kind { return GreetingRemovedKind }
func (GreetingRemoved) isPayload() {}

type GroupMessage struct {
	Message domain.ChatMessage `json:"message"`
}

func (GroupMessage) Kind() Kind { return GroupMessageKind }
func (GroupMessage) isPayload() {}

type MemberJoined struct {
	Member domain.Member `json:"member"`
}

func (MemberJoined) Kind() Kind { return MemberJoinedKind }
func (MemberJoined) isPayload() {}

type ModerationAction struct {
	GreetingID  domain.GreetingID       `json:"greeting_id"`
	Action      domain.ModerationAction `json:"action"`
	Reason      string                  `json:"reason,omitempty"`
	ModeratorID domain.UserID           `json:"moderator_id"`
	Status      domain.Status           `json:"status"`
}

func (ModerationAction) Kind() Kind { return ModerationActionKind }
func (ModerationAction) isPayload() {}
