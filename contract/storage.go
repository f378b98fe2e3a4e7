//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=../mocks/mock_storage.go -package=mocks
package contract

import (
	"context"
	"greeting-hub/domain"
	"time"
)

type IGreetingStore interface {
	InsertGreeting(ctx context.Context, greeting domain.Greeting) (domain.Greeting, error)
	GetGreeting(ctx context.Context, id domain.GreetingID) (domain.Greeting, error)
	UpdateGreetingStatus(ctx context.Context, id domain.GreetingID, status domain.Status, at time.Time) (domain.Greeting, error)
	DeleteGreeting(ctx context.Context, id domain.GreetingID) error
	ListPendingGreetings(ctx context.Context) ([]domain.Greeting, error)
	ListGreetingsBySender(ctx context.Context, sender domain.UserID) ([]domain.Greeting, error)
}

type INotificationStore interface {
	InsertNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	ListNotifications(ctx context.Context, userID domain.UserID, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID domain.UserID, id domain.NotificationID, at time.Time) (domain.Notification, error)
}

type IChatStore interface {
	InsertChatMessage(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error)
	ListChatMessages(ctx context.Context, groupID domain.GroupID, cursor *string) ([]domain.ChatMessage, *string, error)
	SearchChatMessages(ctx context.Context, groupID domain.GroupID, terms string, limit int) ([]domain.ChatMessage, error)
}

type IMemberStore interface {
	InsertGroup(ctx context.Context, group domain.Group) (domain.Group, error)
	GetGroup(ctx context.Context, id domain.GroupID) (domain.Group, error)
	InsertMember(ctx context.Context, member domain.Member) (domain.Member, error)
	IsMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (bool, error)
	ListMembers(ctx context.Context, groupID domain.GroupID) ([]domain.Member, error)
}

type IUserStore interface {
	CreateUser(email, hashedPassword string) (domain.UserID, error)
	GetUserByEmail(email string) (domain.User, error)
	Exists(id domain.UserID) (bool, error)
}

type IMediaStore interface {
	PutMedia(ctx context.Context, owner domain.UserID, mimeType string, data []byte) (domain.Media, error)
	GetMedia(ctx context.Context, id string) (domain.Media, []byte, error)
}
