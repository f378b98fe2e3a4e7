package services

import (
	"context"
	"greeting-hub/domain"
)

// INotificationService is the read side of the user inbox.
// notification.Materializer implements it.
type INotificationService interface {
	List(ctx context.Context, userID domain.UserID, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID domain.UserID, id domain.NotificationID) (domain.Notification, error)
}
