package ws

import (
	"encoding/json"
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/errors"
)

// Frame is what a client sends: a command type and its payload.
type Frame struct {
	Type    domain.CommandType `json:"type"`
	Payload json.RawMessage    `json:"payload"`
}

// ErrorFrame answers a command that was rejected.
type ErrorFrame struct {
	Type    string             `json:"type"`
	Command domain.CommandType `json:"command,omitempty"`
	Error   string             `json:"error"`
}

func newErrorFrame(command domain.CommandType, err error) ErrorFrame {
	return ErrorFrame{Type: "error", Command: command, Error: err.Error()}
}

// DecodeCommand turns a raw frame into the command it names.
func DecodeCommand(data []byte) (domain.Command, error) {
	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("%w: malformed frame: %v", errors.ErrInvalidCommand, err)
	}

	if len(frame.Payload) == 0 {
		return nil, fmt.Errorf("%w: %s has no payload", errors.ErrInvalidCommand, frame.Type)
	}

	var target domain.Command
	switch frame.Type {
	case domain.JoinGroupCommandType:
		target = &domain.JoinGroupCommand{}
	case domain.LeaveGroupCommandType:
		target = &domain.LeaveGroupCommand{}
	case domain.SendChatMessageCommandType:
		target = &domain.PostMessageCommand{}
	case domain.RequestStatusUpdateCommandType:
		target = &domain.RequestStatusUpdateCommand{}
	case domain.ModerateCommandType:
		target = &domain.ModerateCommand{}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", errors.ErrInvalidCommand, frame.Type)
	}
	return unmarshalCommand(frame.Payload, target)
}

// unmarshalCommand decodes into the pointer then hands back the value,
// the broker switches on value types.
func unmarshalCommand(payload json.RawMessage, target domain.Command) (domain.Command, error) {
	if err := json.Unmarshal(payload, target); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	switch c := target.(type) {
	case *domain.JoinGroupCommand:
		return *c, nil
	case *domain.LeaveGroupCommand:
		return *c, nil
	case *domain.PostMessageCommand:
		return *c, nil
	case *domain.RequestStatusUpdateCommand:
		return *c, nil
	case *domain.ModerateCommand:
		return *c, nil
	}
	return nil, errors.ErrInvalidCommand
}
