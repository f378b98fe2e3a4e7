package lifecycle

import (
	"context"
	"fmt"
	"greeting-hub/domain"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"greeting-hub/mocks"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memoryGreetingStore struct {
	mu        sync.Mutex
	greetings map[domain.GreetingID]domain.Greeting
	updates   atomic.Int32
	failWith  error
}

func newMemoryGreetingStore(greetings ...domain.Greeting) *memoryGreetingStore {
	s := &memoryGreetingStore{greetings: make(map[domain.GreetingID]domain.Greeting)}
	for _, g := range greetings {
		s.greetings[g.ID] = g
	}
	return s
}

func (s *memoryGreetingStore) InsertGreeting(_ context.Context, g domain.Greeting) (domain.Greeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.greetings[g.ID] = g
	return g, nil
}

func (s *memoryGreetingStore) GetGreeting(_ context.Context, id domain.GreetingID) (domain.Greeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.greetings[id]
	if !ok {
		return domain.Greeting{}, errors.ErrNotFound
	}
	return g, nil
}

func (s *memoryGreetingStore) UpdateGreetingStatus(_ context.Context, id domain.GreetingID, status domain.Status, at time.Time) (domain.Greeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return domain.Greeting{}, s.failWith
	}
	g, ok := s.greetings[id]
	if !ok {
		return domain.Greeting{}, errors.ErrNotFound
	}
	g.Status = status
	g.UpdatedAt = at
	s.greetings[id] = g
	s.updates.Add(1)
	return g, nil
}

func (s *memoryGreetingStore) DeleteGreeting(_ context.Context, id domain.GreetingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.greetings, id)
	return nil
}

func (s *memoryGreetingStore) ListPendingGreetings(_ context.Context) ([]domain.Greeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.Greeting
	for _, g := range s.greetings {
		if g.Status == domain.StatusPending {
			res = append(res, g)
		}
	}
	return res, nil
}

func (s *memoryGreetingStore) ListGreetingsBySender(_ context.Context, sender domain.UserID) ([]domain.Greeting, error) {
	return nil, nil
}

func (s *memoryGreetingStore) status(id domain.GreetingID) domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.greetings[id].Status
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []event.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, e event.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
	return nil
}

func (d *recordingDispatcher) forTarget(target domain.Target) []event.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var res []event.Event
	for _, e := range d.events {
		if e.Target == target {
			res = append(res, e)
		}
	}
	return res
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}

type armingScheduler struct {
	mu    sync.Mutex
	armed map[domain.GreetingID]func()
}

func newArmingScheduler() *armingScheduler {
	return &armingScheduler{armed: make(map[domain.GreetingID]func())}
}

func (s *armingScheduler) Schedule(id domain.GreetingID, _ time.Time, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed[id] = fire
}

func (s *armingScheduler) Cancel(id domain.GreetingID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.armed[id]
	delete(s.armed, id)
	return ok
}

func (s *armingScheduler) fire(id domain.GreetingID) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed[id]
}

func userGreeting(id string, status domain.Status) domain.Greeting {
	now := time.Now().UTC()
	return domain.Greeting{
		ID:            domain.GreetingID(id),
		SenderID:      "alice",
		RecipientType: domain.RecipientUser,
		RecipientID:   "bob",
		Message:       "Happy birthday",
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func groupGreeting(id string, status domain.Status) domain.Greeting {
	g := userGreeting(id, status)
	g.RecipientType = domain.RecipientGroup
	g.RecipientID = "book-club"
	return g
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelError)
}

func TestMachine_Transition_Terminal_States_Reject_Everything(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	for _, terminal := range []domain.Status{domain.StatusDelivered, domain.StatusFailed} {
		for _, to := range []domain.Status{domain.StatusPending, domain.StatusSent, domain.StatusDelivered, domain.StatusFailed} {
			// Given a greeting in a terminal state
			g := userGreeting(fmt.Sprintf("g-%s-%s", terminal, to), terminal)
			store := newMemoryGreetingStore(g)
			dispatcher := &recordingDispatcher{}
			m := NewMachine(testLogger(), store, dispatcher,
				mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

			// When any transition is requested
			_, err := m.Transition(context.Background(), g.ID, to, "test")

			// Then it is rejected, nothing is written and nothing is emitted
			req.ErrorIs(err, errors.ErrInvalidTransition)
			req.Equal(terminal, store.status(g.ID))
			req.Zero(store.updates.Load())
			req.Zero(dispatcher.count())
		}
	}
}

func TestMachine_Transition_Persistence_Failure_Emits_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a storage that fails every write
	g := userGreeting("g1", domain.StatusSent)
	store := newMemoryGreetingStore(g)
	store.failWith = fmt.Errorf("disk full")
	dispatcher := &recordingDispatcher{}
	m := NewMachine(testLogger(), store, dispatcher,
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

	// When the greeting is acknowledged
	_, err := m.Acknowledge(context.Background(), g.ID, "bob")

	// Then the failure surfaces and the prior state is kept
	req.ErrorIs(err, errors.ErrPersistence)
	req.Equal(domain.StatusSent, store.status(g.ID))
	req.Zero(dispatcher.count())
}

func TestMachine_Created_Materialization_Failure_Emits_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	g := userGreeting("g1", domain.StatusSent)
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	materializer := mocks.NewMockIMaterializer(ctrl)
	materializer.EXPECT().
		Materialize(gomock.Any(), g, gomock.Any()).
		Return(domain.Notification{}, fmt.Errorf("%w: boom", errors.ErrPersistence))

	m := NewMachine(testLogger(), store, dispatcher,
		materializer, mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

	err := m.Created(context.Background(), g)

	req.ErrorIs(err, errors.ErrPersistence)
	req.Zero(dispatcher.count())
}

func TestMachine_Created_Online_Recipient_Is_Delivered(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given bob is online and alice sends him an immediate greeting
	g := userGreeting("g1", domain.StatusSent)
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	materializer := mocks.NewMockIMaterializer(ctrl)
	materializer.EXPECT().Materialize(gomock.Any(), g, gomock.Any()).Return(domain.Notification{ID: "n1"}, nil)
	presence := mocks.NewMockIPresence(ctrl)
	presence.EXPECT().HasSubscribers(domain.UserTarget("bob")).Return(true)

	m := NewMachine(testLogger(), store, dispatcher, materializer, presence, mocks.NewMockIScheduler(ctrl))

	// When the creation is reflected
	req.NoError(m.Created(context.Background(), g))

	// Then the greeting ends delivered
	req.Equal(domain.StatusDelivered, store.status(g.ID))

	// And alice sees it created then delivered
	aliceEvents := dispatcher.forTarget(domain.UserTarget("alice"))
	req.Len(aliceEvents, 2)
	req.Equal(event.GreetingCreatedKind, aliceEvents[0].Kind())
	req.Equal(event.GreetingStatusChangedKind, aliceEvents[1].Kind())

	// And bob only receives the status change here, his creation push comes from the materializer
	bobEvents := dispatcher.forTarget(domain.UserTarget("bob"))
	req.Len(bobEvents, 1)
	changed, ok := bobEvents[0].Payload.(event.GreetingStatusChanged)
	req.True(ok)
	req.Equal(domain.StatusSent, changed.Previous)
	req.Equal(domain.StatusDelivered, changed.Greeting.Status)
}

func TestMachine_Created_Pending_Arms_Scheduler(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	at := time.Now().Add(time.Hour)
	g := userGreeting("g1", domain.StatusPending)
	g.ScheduledAt = &at
	store := newMemoryGreetingStore(g)
	materializer := mocks.NewMockIMaterializer(ctrl)
	materializer.EXPECT().Materialize(gomock.Any(), g, gomock.Any()).Return(domain.Notification{ID: "n1"}, nil)
	scheduler := mocks.NewMockIScheduler(ctrl)
	scheduler.EXPECT().Schedule(g.ID, at, gomock.Any()).Times(1)

	m := NewMachine(testLogger(), store, &recordingDispatcher{}, materializer, mocks.NewMockIPresence(ctrl), scheduler)

	req.NoError(m.Created(context.Background(), g))
	req.Equal(domain.StatusPending, store.status(g.ID))
}

func TestMachine_SendNow_Wins_Over_Late_Timer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	// Given a greeting scheduled one hour ahead
	at := time.Now().Add(time.Hour)
	g := userGreeting("g1", domain.StatusPending)
	g.ScheduledAt = &at
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}

	var fire func()
	scheduler := mocks.NewMockIScheduler(ctrl)
	scheduler.EXPECT().Schedule(g.ID, at, gomock.Any()).
		Do(func(_ domain.GreetingID, _ time.Time, f func()) { fire = f })
	scheduler.EXPECT().Cancel(g.ID).Return(true).AnyTimes()

	materializer := mocks.NewMockIMaterializer(ctrl)
	materializer.EXPECT().Materialize(gomock.Any(), g, gomock.Any()).Return(domain.Notification{ID: "n1"}, nil)
	presence := mocks.NewMockIPresence(ctrl)
	presence.EXPECT().HasSubscribers(gomock.Any()).Return(false).AnyTimes()

	m := NewMachine(testLogger(), store, dispatcher, materializer, presence, scheduler)
	req.NoError(m.Created(ctx, g))
	req.NotNil(fire)

	// When the sender releases it now
	sent, err := m.SendNow(ctx, g.ID, "alice")

	// Then it is sent
	req.NoError(err)
	req.Equal(domain.StatusSent, sent.Status)

	// When the timer fires anyway
	err = m.FireScheduled(ctx, g.ID)

	// Then the late fire is rejected and the status is untouched
	req.ErrorIs(err, errors.ErrInvalidTransition)
	req.Equal(domain.StatusSent, store.status(g.ID))
	req.Equal(int32(1), store.updates.Load())
}

func TestMachine_SendNow_Only_By_Sender(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	g := userGreeting("g1", domain.StatusPending)
	store := newMemoryGreetingStore(g)
	m := NewMachine(testLogger(), store, &recordingDispatcher{},
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

	_, err := m.SendNow(context.Background(), g.ID, "mallory")

	req.ErrorIs(err, errors.ErrForbidden)
	req.Equal(domain.StatusPending, store.status(g.ID))
}

func TestMachine_Concurrent_Transitions_Apply_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a sent greeting
	g := userGreeting("g1", domain.StatusSent)
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	m := NewMachine(testLogger(), store, dispatcher,
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

	// When many goroutines race delivered against failed
	var wg sync.WaitGroup
	var succeeded atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			to := domain.StatusDelivered
			if i%2 == 0 {
				to = domain.StatusFailed
			}
			if _, err := m.Transition(context.Background(), g.ID, to, "race"); err == nil {
				succeeded.Add(1)
			} else {
				req.ErrorIs(err, errors.ErrInvalidTransition)
			}
		}(i)
	}
	wg.Wait()

	// Then exactly one transition was applied and the final status is terminal
	req.Equal(int32(1), succeeded.Load())
	req.Equal(int32(1), store.updates.Load())
	req.True(store.status(g.ID).IsTerminal())
}

func TestMachine_Moderate_Reject_Notifies_Sender(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	g := userGreeting("g1", domain.StatusPending)
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	scheduler := mocks.NewMockIScheduler(ctrl)
	scheduler.EXPECT().Cancel(g.ID).Return(true)
	m := NewMachine(testLogger(), store, dispatcher,
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), scheduler)

	admin := domain.Identity{UserID: "root", Roles: []string{domain.RoleAdmin}}

	// When a non admin tries first
	_, err := m.Moderate(context.Background(), g.ID, domain.ModerationReject, "spam", domain.Identity{UserID: "bob"})
	req.ErrorIs(err, errors.ErrForbidden)

	// When the admin rejects
	updated, err := m.Moderate(context.Background(), g.ID, domain.ModerationReject, "spam", admin)

	// Then the greeting fails and the sender gets the status change followed by the moderation action
	req.NoError(err)
	req.Equal(domain.StatusFailed, updated.Status)
	aliceEvents := dispatcher.forTarget(domain.UserTarget("alice"))
	req.Len(aliceEvents, 2)
	req.Equal(event.GreetingStatusChangedKind, aliceEvents[0].Kind())
	action, ok := aliceEvents[1].Payload.(event.ModerationAction)
	req.True(ok)
	req.Equal(domain.ModerationReject, action.Action)
	req.Equal("spam", action.Reason)

	// And the recipient hears nothing about a failure
	req.Empty(dispatcher.forTarget(domain.UserTarget("bob")))
}

func TestMachine_RecoverScheduled(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	at := time.Now().Add(time.Minute)
	scheduled := userGreeting("g1", domain.StatusPending)
	scheduled.ScheduledAt = &at
	store := newMemoryGreetingStore(scheduled, userGreeting("g2", domain.StatusSent))

	scheduler := mocks.NewMockIScheduler(ctrl)
	scheduler.EXPECT().Schedule(scheduled.ID, at, gomock.Any()).Times(1)

	m := NewMachine(testLogger(), store, &recordingDispatcher{},
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), scheduler)

	armed, err := m.RecoverScheduled(context.Background())
	req.NoError(err)
	req.Equal(1, armed)
}

func TestMachine_SendNow_Persistence_Failure_Keeps_Timer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	// Given a greeting scheduled one hour ahead
	at := time.Now().Add(time.Hour)
	g := userGreeting("g1", domain.StatusPending)
	g.ScheduledAt = &at
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	scheduler := newArmingScheduler()
	materializer := mocks.NewMockIMaterializer(ctrl)
	materializer.EXPECT().Materialize(gomock.Any(), g, gomock.Any()).Return(domain.Notification{ID: "n1"}, nil)
	presence := mocks.NewMockIPresence(ctrl)
	presence.EXPECT().HasSubscribers(domain.UserTarget("bob")).Return(false)

	m := NewMachine(testLogger(), store, dispatcher, materializer, presence, scheduler)
	req.NoError(m.Created(ctx, g))
	emitted := dispatcher.count()

	// When the sender releases it while the storage is failing
	store.failWith = fmt.Errorf("%w: disk full", errors.ErrPersistence)
	_, err := m.SendNow(ctx, g.ID, "alice")

	// Then the failure surfaces, the greeting stays pending and its timer stays armed
	req.ErrorIs(err, errors.ErrPersistence)
	req.Equal(domain.StatusPending, store.status(g.ID))
	fire := scheduler.fire(g.ID)
	req.NotNil(fire)
	req.Equal(emitted, dispatcher.count())

	// When the storage recovers and the timer fires
	store.failWith = nil
	fire()

	// Then the greeting is sent and disarmed
	req.Equal(domain.StatusSent, store.status(g.ID))
	req.Nil(scheduler.fire(g.ID))
}

func TestMachine_Removed_Cancels_Timer_And_Late_Fire_Is_Rejected(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	// Given a scheduled greeting whose timer is armed
	at := time.Now().Add(time.Hour)
	g := userGreeting("g1", domain.StatusPending)
	g.ScheduledAt = &at
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	scheduler := newArmingScheduler()
	materializer := mocks.NewMockIMaterializer(ctrl)
	materializer.EXPECT().Materialize(gomock.Any(), g, gomock.Any()).Return(domain.Notification{ID: "n1"}, nil)

	m := NewMachine(testLogger(), store, dispatcher, materializer, mocks.NewMockIPresence(ctrl), scheduler)
	req.NoError(m.Created(ctx, g))
	req.NotNil(scheduler.fire(g.ID))

	// When the sender deletes it
	req.NoError(store.DeleteGreeting(ctx, g.ID))
	m.Removed(ctx, g)

	// Then the timer is disarmed
	req.Nil(scheduler.fire(g.ID))

	// And both sides are told
	aliceEvents := dispatcher.forTarget(domain.UserTarget("alice"))
	req.Len(aliceEvents, 2)
	req.Equal(event.GreetingCreatedKind, aliceEvents[0].Kind())
	removed, ok := aliceEvents[1].Payload.(event.GreetingRemoved)
	req.True(ok)
	req.Equal(g.ID, removed.GreetingID)
	req.Equal(domain.UserID("alice"), removed.SenderID)
	bobEvents := dispatcher.forTarget(domain.UserTarget("bob"))
	req.Len(bobEvents, 1)
	req.Equal(event.GreetingRemovedKind, bobEvents[0].Kind())

	// When a timer that was already firing reaches the machine
	err := m.FireScheduled(ctx, g.ID)

	// Then it is rejected as a transition, not reported as a missing greeting
	req.ErrorIs(err, errors.ErrInvalidTransition)
	req.NotErrorIs(err, errors.ErrNotFound)
	req.Zero(store.updates.Load())
	req.Equal(3, dispatcher.count())
}

func TestMachine_Reflect(t *testing.T) {
	ctrl := gomock.NewController(t)

	testCases := []struct {
		name      string
		greeting  domain.Greeting
		previous  domain.Status
		recipient bool
	}{
		{name: "delivered reaches both sides", greeting: userGreeting("g1", domain.StatusDelivered), previous: domain.StatusSent, recipient: true},
		{name: "failed only reaches the sender", greeting: userGreeting("g2", domain.StatusFailed), previous: domain.StatusPending, recipient: false},
		{name: "group delivery reaches the group", greeting: groupGreeting("g3", domain.StatusDelivered), previous: domain.StatusSent, recipient: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			dispatcher := &recordingDispatcher{}
			m := NewMachine(testLogger(), newMemoryGreetingStore(tc.greeting), dispatcher,
				mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

			m.Reflect(context.Background(), tc.greeting, tc.previous)

			senderEvents := dispatcher.forTarget(tc.greeting.SenderTarget())
			req.Len(senderEvents, 1)
			changed, ok := senderEvents[0].Payload.(event.GreetingStatusChanged)
			req.True(ok)
			req.Equal(tc.previous, changed.Previous)
			req.Equal(tc.greeting.Status, changed.Greeting.Status)

			recipientEvents := dispatcher.forTarget(tc.greeting.RecipientTarget())
			if tc.recipient {
				req.Len(recipientEvents, 1)
				req.Equal(event.GreetingStatusChangedKind, recipientEvents[0].Kind())
			} else {
				req.Empty(recipientEvents)
			}
		})
	}
}

func TestMachine_Created_Group_Recipient(t *testing.T) {
	testCases := []struct {
		name   string
		online bool
		want   domain.Status
	}{
		{name: "joined members online deliver it", online: true, want: domain.StatusDelivered},
		{name: "nobody joined keeps it sent", online: false, want: domain.StatusSent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)

			// Given alice greets the book club
			g := groupGreeting("g1", domain.StatusSent)
			store := newMemoryGreetingStore(g)
			dispatcher := &recordingDispatcher{}
			presence := mocks.NewMockIPresence(ctrl)
			presence.EXPECT().HasSubscribers(domain.GroupTarget("book-club")).Return(tc.online)

			// And no notification is materialized for a group
			m := NewMachine(testLogger(), store, dispatcher,
				mocks.NewMockIMaterializer(ctrl), presence, mocks.NewMockIScheduler(ctrl))

			// When the creation is reflected
			req.NoError(m.Created(context.Background(), g))

			// Then the group gets the greeting itself
			req.Equal(tc.want, store.status(g.ID))
			groupEvents := dispatcher.forTarget(domain.GroupTarget("book-club"))
			req.NotEmpty(groupEvents)
			created, ok := groupEvents[0].Payload.(event.GreetingCreated)
			req.True(ok)
			req.Equal(g.ID, created.Greeting.ID)

			aliceEvents := dispatcher.forTarget(domain.UserTarget("alice"))
			req.Equal(event.GreetingCreatedKind, aliceEvents[0].Kind())
			if tc.online {
				req.Len(groupEvents, 2)
				req.Len(aliceEvents, 2)
				req.Equal(event.GreetingStatusChangedKind, groupEvents[1].Kind())
				req.Equal(event.GreetingStatusChangedKind, aliceEvents[1].Kind())
			} else {
				req.Len(groupEvents, 1)
				req.Len(aliceEvents, 1)
			}
		})
	}
}

func TestMachine_Acknowledge(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	g := userGreeting("g1", domain.StatusSent)
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	m := NewMachine(testLogger(), store, dispatcher,
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))

	// When someone other than bob acknowledges
	_, err := m.Acknowledge(ctx, g.ID, "carol")
	req.ErrorIs(err, errors.ErrForbidden)
	req.Zero(dispatcher.count())

	// When bob acknowledges
	updated, err := m.Acknowledge(ctx, g.ID, "bob")

	// Then the greeting is delivered and both sides see it
	req.NoError(err)
	req.Equal(domain.StatusDelivered, updated.Status)
	req.Equal(domain.StatusDelivered, store.status(g.ID))
	req.Len(dispatcher.forTarget(domain.UserTarget("alice")), 1)
	req.Len(dispatcher.forTarget(domain.UserTarget("bob")), 1)

	// And a second acknowledgement is a conflict
	_, err = m.Acknowledge(ctx, g.ID, "bob")
	req.ErrorIs(err, errors.ErrInvalidTransition)
	req.Equal(int32(1), store.updates.Load())
}

func TestMachine_Moderate_Approve_Keeps_Status(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	g := userGreeting("g1", domain.StatusSent)
	store := newMemoryGreetingStore(g)
	dispatcher := &recordingDispatcher{}
	m := NewMachine(testLogger(), store, dispatcher,
		mocks.NewMockIMaterializer(ctrl), mocks.NewMockIPresence(ctrl), mocks.NewMockIScheduler(ctrl))
	admin := domain.Identity{UserID: "root", Roles: []string{domain.RoleAdmin}}

	// When the admin approves
	approved, err := m.Moderate(context.Background(), g.ID, domain.ModerationApprove, "looks fine", admin)

	// Then nothing is written and the status is unchanged
	req.NoError(err)
	req.Equal(domain.StatusSent, approved.Status)
	req.Zero(store.updates.Load())

	// And only the sender hears about the decision
	aliceEvents := dispatcher.forTarget(domain.UserTarget("alice"))
	req.Len(aliceEvents, 1)
	action, ok := aliceEvents[0].Payload.(event.ModerationAction)
	req.True(ok)
	req.Equal(domain.ModerationApprove, action.Action)
	req.Equal(domain.StatusSent, action.Status)
	req.Equal(domain.UserID("root"), action.ModeratorID)
	req.Empty(dispatcher.forTarget(domain.UserTarget("bob")))
}
