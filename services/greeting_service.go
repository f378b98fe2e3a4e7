package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/domain/mimetypes"
	"greeting-hub/errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ComposeRequest is the body of POST /greetings.
// Media is optional and carried inline as standard base64.
type ComposeRequest struct {
	RecipientType domain.RecipientType `json:"recipient_type" validate:"required,oneof=user group"`
	RecipientID   string               `json:"recipient_id" validate:"required"`
	Message       string               `json:"message" validate:"required,max=2000"`
	Media         string               `json:"media,omitempty" validate:"omitempty,base64"`
	ScheduledAt   *time.Time           `json:"scheduled_at,omitempty"`
}

type IGreetingService interface {
	Compose(ctx context.Context, sender domain.Identity, req ComposeRequest) (domain.Greeting, error)
	ListSent(ctx context.Context, sender domain.Identity) ([]domain.Greeting, error)
	SendNow(ctx context.Context, actor domain.Identity, id domain.GreetingID) (domain.Greeting, error)
	Delete(ctx context.Context, actor domain.Identity, id domain.GreetingID) error
	Moderate(ctx context.Context, moderator domain.Identity, id domain.GreetingID, action domain.ModerationAction, reason string) (domain.Greeting, error)
}

type GreetingService struct {
	log           *slog.Logger
	greetings     contract.IGreetingStore
	media         contract.IMediaStore
	members       contract.IMemberStore
	users         contract.IUserStore
	broker        contract.IBroker
	validate      *validator.Validate
	maxMediaBytes int
	now           func() time.Time
}

func NewGreetingService(log *slog.Logger, greetings contract.IGreetingStore, media contract.IMediaStore,
	members contract.IMemberStore, users contract.IUserStore, broker contract.IBroker, maxMediaBytes int) *GreetingService {
	return &GreetingService{
		log:           log,
		greetings:     greetings,
		media:         media,
		members:       members,
		users:         users,
		broker:        broker,
		validate:      validator.New(),
		maxMediaBytes: maxMediaBytes,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Compose persists a new greeting then hands it to the realtime layer.
// When the realtime side cannot persist its part the greeting is removed again,
// so no greeting is left sent without a notification.
func (s *GreetingService) Compose(ctx context.Context, sender domain.Identity, req ComposeRequest) (domain.Greeting, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.Greeting{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if err := s.checkRecipient(ctx, sender.UserID, req); err != nil {
		return domain.Greeting{}, err
	}

	now := s.now()
	greeting := domain.Greeting{
		ID:            domain.GreetingID(uuid.NewString()),
		SenderID:      sender.UserID,
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
		Message:       req.Message,
		Status:        domain.InitialStatus(now, req.ScheduledAt),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if greeting.Status == domain.StatusPending {
		at := req.ScheduledAt.UTC()
		greeting.ScheduledAt = &at
	}

	if req.Media != "" {
		media, err := s.storeMedia(ctx, sender.UserID, req.Media)
		if err != nil {
			return domain.Greeting{}, err
		}
		greeting.Media = &media
	}

	stored, err := s.greetings.InsertGreeting(ctx, greeting)
	if err != nil {
		s.log.Error("Greeting persistence failed", "sender_id", sender.UserID, "error", err)
		return domain.Greeting{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	s.log.Debug("Greeting stored", "greeting_id", stored.ID, "status", stored.Status)

	if err := s.broker.NotifyGreetingCreated(ctx, stored); err != nil {
		if !errors.Is(err, errors.ErrPersistence) {
			return stored, err
		}
		if delErr := s.greetings.DeleteGreeting(ctx, stored.ID); delErr != nil {
			s.log.Error("Greeting rollback failed", "greeting_id", stored.ID, "error", delErr)
		}
		return domain.Greeting{}, err
	}
	// The online rule may already have moved it forward
	if current, err := s.greetings.GetGreeting(ctx, stored.ID); err == nil {
		return current, nil
	}
	return stored, nil
}

func (s *GreetingService) checkRecipient(ctx context.Context, sender domain.UserID, req ComposeRequest) error {
	switch req.RecipientType {
	case domain.RecipientGroup:
		groupID := domain.GroupID(req.RecipientID)
		if _, err := s.members.GetGroup(ctx, groupID); err != nil {
			return err
		}
		ok, err := s.members.IsMember(ctx, groupID, sender)
		if err != nil {
			return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
		}
		if !ok {
			return fmt.Errorf("%w: not a member of group %s", errors.ErrForbidden, groupID)
		}
	default:
		exists, err := s.users.Exists(domain.UserID(req.RecipientID))
		if err != nil {
			return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
		}
		if !exists {
			return fmt.Errorf("%w: user %s", errors.ErrNotFound, req.RecipientID)
		}
	}
	return nil
}

// storeMedia keeps only what the content says it is: images, audio or video.
func (s *GreetingService) storeMedia(ctx context.Context, owner domain.UserID, encoded string) (domain.Media, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return domain.Media{}, fmt.Errorf("%w: media is not base64", errors.ErrInvalidRequest)
	}
	if s.maxMediaBytes > 0 && len(data) > s.maxMediaBytes {
		return domain.Media{}, fmt.Errorf("%w: media exceeds %d bytes", errors.ErrInvalidRequest, s.maxMediaBytes)
	}
	detected := mimetypes.Sniff(data)
	if !mimetypes.IsGreetingMedia(detected) {
		return domain.Media{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, detected)
	}
	media, err := s.media.PutMedia(ctx, owner, string(detected), data)
	if err != nil {
		return domain.Media{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return media, nil
}

func (s *GreetingService) ListSent(ctx context.Context, sender domain.Identity) ([]domain.Greeting, error) {
	greetings, err := s.greetings.ListGreetingsBySender(ctx, sender.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return greetings, nil
}

func (s *GreetingService) SendNow(ctx context.Context, actor domain.Identity, id domain.GreetingID) (domain.Greeting, error) {
	return s.broker.SendNow(ctx, id, actor.UserID)
}

// Delete is open to the sender and to admins.
func (s *GreetingService) Delete(ctx context.Context, actor domain.Identity, id domain.GreetingID) error {
	greeting, err := s.greetings.GetGreeting(ctx, id)
	if err != nil {
		return err
	}
	if greeting.SenderID != actor.UserID && !actor.IsAdmin() {
		return errors.ErrForbidden
	}
	if err := s.greetings.DeleteGreeting(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return s.broker.NotifyGreetingRemoved(ctx, greeting)
}

func (s *GreetingService) Moderate(ctx context.Context, moderator domain.Identity, id domain.GreetingID,
	action domain.ModerationAction, reason string) (domain.Greeting, error) {
	return s.broker.NotifyModerationAction(ctx, id, action, reason, moderator)
}
