package domain

import "time"

type CommandType string

const (
	JoinGroupCommandType           CommandType = "join_group"
	LeaveGroupCommandType          CommandType = "leave_group"
	SendChatMessageCommandType     CommandType = "send_chat_message"
	RequestStatusUpdateCommandType CommandType = "request_status_update"
	ModerateCommandType            CommandType = "moderate"
)

// Command is an intent received from a live connection.
type Command interface {
	Type() CommandType
}

type JoinGroupCommand struct {
	GroupID GroupID `json:"group_id" validate:"required"`
}

func (JoinGroupCommand) Type() CommandType { return JoinGroupCommandType }

type LeaveGroupCommand struct {
	GroupID GroupID `json:"group_id" validate:"required"`
}

func (LeaveGroupCommand) Type() CommandType { return LeaveGroupCommandType }

type PostMessageCommand struct {
	GroupID   GroupID   `json:"group_id" validate:"required"`
	SenderID  UserID    `json:"-"`
	Content   string    `json:"content" validate:"required,max=4000"`
	CreatedAt time.Time `json:"-"`
}

func (PostMessageCommand) Type() CommandType { return SendChatMessageCommandType }

// RequestStatusUpdateCommand asks for a status change of a greeting:
// sent to confirm a send-now from the sender, delivered to acknowledge reception.
type RequestStatusUpdateCommand struct {
	GreetingID GreetingID `json:"greeting_id" validate:"required"`
	Status     Status     `json:"status" validate:"required,oneof=sent delivered"`
}

func (RequestStatusUpdateCommand) Type() CommandType { return RequestStatusUpdateCommandType }

type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
)

type ModerateCommand struct {
	GreetingID GreetingID       `json:"greeting_id" validate:"required"`
	Action     ModerationAction `json:"action" validate:"required,oneof=approve reject"`
	Reason     string           `json:"reason"`
}

func (ModerateCommand) Type() CommandType { return ModerateCommandType }
