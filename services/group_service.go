package services

import (
	"context"
	"fmt"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultSearchLimit = 20

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type AddMemberRequest struct {
	UserID domain.UserID `json:"user_id" validate:"required"`
}

type IGroupService interface {
	CreateGroup(ctx context.Context, owner domain.Identity, name string) (domain.Group, error)
	AddMember(ctx context.Context, actor domain.Identity, groupID domain.GroupID, userID domain.UserID) (domain.Member, error)
	PostMessage(ctx context.Context, actor domain.Identity, groupID domain.GroupID, content string) (domain.ChatMessage, error)
	GetMessages(ctx context.Context, actor domain.Identity, groupID domain.GroupID, cursor *string) ([]domain.ChatMessage, *string, error)
	SearchMessages(ctx context.Context, actor domain.Identity, groupID domain.GroupID, terms string, limit int) ([]domain.ChatMessage, error)
}

type GroupService struct {
	log     *slog.Logger
	members contract.IMemberStore
	chats   contract.IChatStore
	users   contract.IUserStore
	broker  contract.IBroker
	now     func() time.Time
}

func NewGroupService(log *slog.Logger, members contract.IMemberStore, chats contract.IChatStore,
	users contract.IUserStore, broker contract.IBroker) *GroupService {
	return &GroupService{
		log:     log,
		members: members,
		chats:   chats,
		users:   users,
		broker:  broker,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateGroup stores the group with its creator as owner.
func (s *GroupService) CreateGroup(ctx context.Context, owner domain.Identity, name string) (domain.Group, error) {
	if name == "" {
		return domain.Group{}, fmt.Errorf("%w: empty group name", errors.ErrInvalidRequest)
	}
	now := s.now()
	group, err := s.members.InsertGroup(ctx, domain.Group{
		ID:        domain.GroupID(uuid.NewString()),
		Name:      name,
		OwnerID:   owner.UserID,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Group{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if _, err := s.members.InsertMember(ctx, domain.Member{
		GroupID:  group.ID,
		UserID:   owner.UserID,
		Role:     domain.MemberRoleOwner,
		JoinedAt: now,
	}); err != nil {
		return domain.Group{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	s.log.Info("Group created", "group_id", group.ID, "owner_id", owner.UserID)
	return group, nil
}

// AddMember is reserved to the group owner and admins.
func (s *GroupService) AddMember(ctx context.Context, actor domain.Identity, groupID domain.GroupID, userID domain.UserID) (domain.Member, error) {
	group, err := s.members.GetGroup(ctx, groupID)
	if err != nil {
		return domain.Member{}, err
	}
	if group.OwnerID != actor.UserID && !actor.IsAdmin() {
		return domain.Member{}, errors.ErrForbidden
	}
	exists, err := s.users.Exists(userID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if !exists {
		return domain.Member{}, fmt.Errorf("%w: user %s", errors.ErrNotFound, userID)
	}

	member, err := s.members.InsertMember(ctx, domain.Member{
		GroupID:  groupID,
		UserID:   userID,
		Role:     domain.MemberRoleMember,
		JoinedAt: s.now(),
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if err := s.broker.NotifyMemberJoined(ctx, member); err != nil {
		s.log.Warn("Member joined event not dispatched", "group_id", groupID, "user_id", userID, "error", err)
	}
	return member, nil
}

func (s *GroupService) PostMessage(ctx context.Context, actor domain.Identity, groupID domain.GroupID, content string) (domain.ChatMessage, error) {
	return s.broker.PostChatMessage(ctx, domain.PostMessageCommand{
		GroupID:  groupID,
		SenderID: actor.UserID,
		Content:  content,
	})
}

func (s *GroupService) GetMessages(ctx context.Context, actor domain.Identity, groupID domain.GroupID, cursor *string) ([]domain.ChatMessage, *string, error) {
	if err := s.requireMember(ctx, groupID, actor.UserID); err != nil {
		return nil, nil, err
	}
	messages, next, err := s.chats.ListChatMessages(ctx, groupID, cursor)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return messages, next, nil
}

func (s *GroupService) SearchMessages(ctx context.Context, actor domain.Identity, groupID domain.GroupID, terms string, limit int) ([]domain.ChatMessage, error) {
	if terms == "" {
		return nil, fmt.Errorf("%w: empty search", errors.ErrInvalidRequest)
	}
	if err := s.requireMember(ctx, groupID, actor.UserID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	messages, err := s.chats.SearchChatMessages(ctx, groupID, terms, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return messages, nil
}

func (s *GroupService) requireMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) error {
	ok, err := s.members.IsMember(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if !ok {
		return errors.ErrForbidden
	}
	return nil
}
