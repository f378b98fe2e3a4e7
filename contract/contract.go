//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"greeting-hub/domain"
	"greeting-hub/domain/event"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound side of one live connection.
// Consume must honour ctx: a send that cannot complete before the deadline returns ctx.Err().
// Close is called once by the registry when the connection goes away.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
	Close()
}

type IDispatcher interface {
	Dispatch(ctx context.Context, e event.Event) error
}

// IPresence answers whether a target currently has at least one live subscriber.
type IPresence interface {
	HasSubscribers(target domain.Target) bool
}

type IScheduler interface {
	Schedule(id domain.GreetingID, at time.Time, fire func())
	Cancel(id domain.GreetingID) bool
}

type IMaterializer interface {
	Materialize(ctx context.Context, greeting domain.Greeting, message string) (domain.Notification, error)
}

type IdentityVerifier interface {
	VerifyIdentity(credential string) (domain.Identity, error)
}

// IBroker is what the connection transport and the write path see of the realtime layer.
type IBroker interface {
	Connect(ctx context.Context, credential string, sink EventSink) (domain.ConnectionID, domain.Identity, error)
	HandleCommand(ctx context.Context, connectionID domain.ConnectionID, cmd domain.Command) error
	Disconnect(connectionID domain.ConnectionID)

	NotifyGreetingCreated(ctx context.Context, greeting domain.Greeting) error
	NotifyGreetingStatusChanged(ctx context.Context, greeting domain.Greeting, previous domain.Status) error
	NotifyGreetingRemoved(ctx context.Context, greeting domain.Greeting) error
	NotifyMemberJoined(ctx context.Context, member domain.Member) error
	NotifyModerationAction(ctx context.Context, greetingID domain.GreetingID, action domain.ModerationAction, reason string, moderator domain.Identity) (domain.Greeting, error)
	SendNow(ctx context.Context, greetingID domain.GreetingID, actor domain.UserID) (domain.Greeting, error)
	PostChatMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.ChatMessage, error)
}
