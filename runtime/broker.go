// Package runtime holds the realtime side of the hub: live connections,
// subscription routing, event dispatch and scheduling.
// It reflects committed state and owns no business record.
package runtime

import (
	"context"
	"fmt"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"greeting-hub/internal/keylock"
	"greeting-hub/lifecycle"
	"greeting-hub/moderation"
	"greeting-hub/runtime/workers"
	"log/slog"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Stores groups the collaborators the broker reads to authorize commands.
type Stores struct {
	Greetings contract.IGreetingStore
	Members   contract.IMemberStore
	Chats     contract.IChatStore
}

type Broker struct {
	mu                  sync.Mutex
	log                 *slog.Logger
	supervisor          contract.ISupervisor
	registry            *Registry
	dispatcher          *Dispatcher
	scheduler           *Scheduler
	machine             *lifecycle.Machine
	verifier            contract.IdentityVerifier
	stores              Stores
	moderator           *moderation.Moderator
	validate            *validator.Validate
	chatLocks           *keylock.KeyedMutex
	diagnosticsInterval time.Duration
	started             bool
	now                 func() time.Time
}

func NewBroker(log *slog.Logger, supervisor contract.ISupervisor,
	registry *Registry, dispatcher *Dispatcher, scheduler *Scheduler,
	machine *lifecycle.Machine, verifier contract.IdentityVerifier, stores Stores,
	moderator *moderation.Moderator, diagnosticsInterval time.Duration) *Broker {
	return &Broker{
		log:                 log,
		supervisor:          supervisor,
		registry:            registry,
		dispatcher:          dispatcher,
		scheduler:           scheduler,
		machine:             machine,
		verifier:            verifier,
		stores:              stores,
		moderator:           moderator,
		validate:            validator.New(),
		chatLocks:           keylock.New(),
		diagnosticsInterval: diagnosticsInterval,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the dispatch shards and the maintenance workers on the
// supervisor, then blocks until ctx is canceled or Stop is called.
func (b *Broker) Start(ctx context.Context) {
	// 1. Preparation phase (No Lock)
	shardWorkers := b.dispatcher.Workers()
	recovery := workers.NewRecoveryWorker(b.log, b.machine)

	// 2. Critical Section (Short Lock)
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		b.log.Warn("Broker already started")
		return
	}
	b.started = true
	b.supervisor.Add(shardWorkers...)
	b.supervisor.Add(recovery)
	if b.diagnosticsInterval > 0 {
		b.supervisor.Add(workers.NewDiagnosticsWorker(b.log, b, b.diagnosticsInterval))
	}
	b.mu.Unlock()

	// 3. Execution phase (No Lock)
	b.log.Info("Starting broker and all supervised workers", "shards", len(shardWorkers))
	b.supervisor.Run(ctx)

	b.mu.Lock()
	b.started = false
	b.mu.Unlock()
}

// Stop cancels the supervised workers and disarms every timer.
// Pending greetings are re-armed from storage on the next start.
func (b *Broker) Stop() {
	b.log.Info("Requesting broker shutdown")
	b.mu.Lock()
	b.started = false
	b.mu.Unlock()
	b.supervisor.Stop()
	b.scheduler.Stop()
}

// Connect resolves the credential once and registers the connection under that identity.
// Nothing is replayed: a client that was offline reconciles through its notifications.
func (b *Broker) Connect(_ context.Context, credential string, sink contract.EventSink) (domain.ConnectionID, domain.Identity, error) {
	if credential == "" {
		return "", domain.Identity{}, errors.ErrAuthRequired
	}
	identity, err := b.verifier.VerifyIdentity(credential)
	if err != nil {
		b.log.Debug("Connection refused", "error", err)
		return "", domain.Identity{}, fmt.Errorf("%w: %w", errors.ErrAuthRequired, err)
	}

	conn, err := b.registry.Register(identity, sink)
	if err != nil {
		return "", domain.Identity{}, err
	}
	b.log.Info("Connection registered", "connection_id", conn.ID, "user_id", identity.UserID)
	return conn.ID, identity, nil
}

func (b *Broker) Disconnect(connectionID domain.ConnectionID) {
	if b.registry.Unregister(connectionID) {
		b.log.Info("Connection unregistered", "connection_id", connectionID)
	}
}

// HandleCommand runs an inbound command on behalf of the identity bound to the connection.
func (b *Broker) HandleCommand(ctx context.Context, connectionID domain.ConnectionID, cmd domain.Command) error {
	conn, ok := b.registry.Get(connectionID)
	if !ok {
		return errors.ErrUnknownConnection
	}
	if cmd == nil {
		return errors.ErrInvalidCommand
	}
	if err := b.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	actor := conn.Identity

	switch c := cmd.(type) {
	case domain.JoinGroupCommand:
		if err := b.requireMember(ctx, c.GroupID, actor.UserID); err != nil {
			return err
		}
		return b.registry.Join(connectionID, c.GroupID)

	case domain.LeaveGroupCommand:
		return b.registry.Leave(connectionID, c.GroupID)

	case domain.PostMessageCommand:
		c.SenderID = actor.UserID
		_, err := b.PostChatMessage(ctx, c)
		return err

	case domain.RequestStatusUpdateCommand:
		return b.requestStatusUpdate(ctx, c, actor)

	case domain.ModerateCommand:
		_, err := b.machine.Moderate(ctx, c.GreetingID, c.Action, c.Reason, actor)
		return err

	default:
		return fmt.Errorf("%w: %s", errors.ErrInvalidCommand, cmd.Type())
	}
}

// requestStatusUpdate: "sent" is the sender releasing a scheduled greeting,
// "delivered" is the recipient acknowledging it.
func (b *Broker) requestStatusUpdate(ctx context.Context, c domain.RequestStatusUpdateCommand, actor domain.Identity) error {
	switch c.Status {
	case domain.StatusSent:
		_, err := b.machine.SendNow(ctx, c.GreetingID, actor.UserID)
		return err
	case domain.StatusDelivered:
		greeting, err := b.stores.Greetings.GetGreeting(ctx, c.GreetingID)
		if err != nil {
			return err
		}
		if greeting.RecipientType == domain.RecipientGroup {
			if err := b.requireMember(ctx, domain.GroupID(greeting.RecipientID), actor.UserID); err != nil {
				return err
			}
		}
		_, err = b.machine.Acknowledge(ctx, c.GreetingID, actor.UserID)
		return err
	default:
		return fmt.Errorf("%w: status %q cannot be requested", errors.ErrInvalidCommand, c.Status)
	}
}

func (b *Broker) requireMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) error {
	ok, err := b.stores.Members.IsMember(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a member of group %s", errors.ErrForbidden, userID, groupID)
	}
	return nil
}

func (b *Broker) NotifyGreetingCreated(ctx context.Context, greeting domain.Greeting) error {
	return b.machine.Created(ctx, greeting)
}

func (b *Broker) NotifyGreetingStatusChanged(ctx context.Context, greeting domain.Greeting, previous domain.Status) error {
	b.machine.Reflect(ctx, greeting, previous)
	return nil
}

func (b *Broker) NotifyGreetingRemoved(ctx context.Context, greeting domain.Greeting) error {
	b.machine.Removed(ctx, greeting)
	return nil
}

// NotifyMemberJoined tells the group and the new member's own devices.
func (b *Broker) NotifyMemberJoined(ctx context.Context, member domain.Member) error {
	payload := event.MemberJoined{Member: member}
	if err := b.dispatcher.Dispatch(ctx, event.New(domain.GroupTarget(member.GroupID), payload, b.now())); err != nil {
		return err
	}
	return b.dispatcher.Dispatch(ctx, event.New(domain.UserTarget(member.UserID), payload, b.now()))
}

func (b *Broker) NotifyModerationAction(ctx context.Context, greetingID domain.GreetingID,
	action domain.ModerationAction, reason string, moderator domain.Identity) (domain.Greeting, error) {
	return b.machine.Moderate(ctx, greetingID, action, reason, moderator)
}

func (b *Broker) SendNow(ctx context.Context, greetingID domain.GreetingID, actor domain.UserID) (domain.Greeting, error) {
	return b.machine.SendNow(ctx, greetingID, actor)
}

// PostChatMessage censors, stores and broadcasts a chat message to the group channel.
// Messages of one sender in one group are processed in submission order.
func (b *Broker) PostChatMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.ChatMessage, error) {
	if err := b.validate.Struct(cmd); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	if err := b.requireMember(ctx, cmd.GroupID, cmd.SenderID); err != nil {
		return domain.ChatMessage{}, err
	}

	unlock := b.chatLocks.Lock(string(cmd.GroupID) + "|" + string(cmd.SenderID))
	defer unlock()

	content, censoredWords := b.moderator.Censor(cmd.Content)
	createdAt := cmd.CreatedAt
	if createdAt.IsZero() {
		createdAt = b.now()
	}
	message := domain.ChatMessage{
		ID:            uuid.New(),
		GroupID:       cmd.GroupID,
		SenderID:      cmd.SenderID,
		Content:       content,
		Lang:          whatlanggo.Detect(cmd.Content).Lang.Iso6391(),
		CensoredWords: censoredWords,
		CreatedAt:     createdAt,
	}

	stored, err := b.stores.Chats.InsertChatMessage(ctx, message)
	if err != nil {
		b.log.Error("Chat message persistence failed", "group_id", cmd.GroupID, "error", err)
		return domain.ChatMessage{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if len(censoredWords) > 0 {
		b.log.Info("Chat message censored", "group_id", cmd.GroupID, "sender_id", cmd.SenderID, "words", len(censoredWords))
	}

	e := event.New(domain.GroupTarget(cmd.GroupID), event.GroupMessage{Message: stored}, b.now())
	if err := b.dispatcher.Dispatch(ctx, e); err != nil {
		b.log.Warn("Group message not dispatched", "message_id", stored.ID, "error", err)
	}
	return stored, nil
}

// Started reports whether Start has run and Stop has not.
func (b *Broker) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

func (b *Broker) Size() int          { return b.registry.Size() }
func (b *Broker) GroupCount() int    { return b.registry.GroupCount() }
func (b *Broker) QueueDepth() int    { return b.dispatcher.QueueDepth() }
func (b *Broker) QueueCapacity() int { return b.dispatcher.QueueCapacity() }
func (b *Broker) PendingTimers() int { return b.scheduler.Pending() }

var _ contract.IBroker = (*Broker)(nil)
