package storage

import (
	"context"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newGreeting(id string, sender domain.UserID, status domain.Status, createdAt time.Time) domain.Greeting {
	return domain.Greeting{
		ID:            domain.GreetingID(id),
		SenderID:      sender,
		RecipientType: domain.RecipientUser,
		RecipientID:   "bob",
		Message:       "Happy new year",
		Status:        status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestGreetingRepository_Insert_And_Get(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewGreetingRepository(openInMemory(t), slog.Default())

	at := time.Now().UTC().Add(time.Hour)
	g := newGreeting("g1", "alice", domain.StatusPending, time.Now().UTC())
	g.ScheduledAt = &at
	g.Media = &domain.Media{ID: "m1", MimeType: "image/png", Size: 42}

	_, err := repo.InsertGreeting(ctx, g)
	req.NoError(err)

	fetched, err := repo.GetGreeting(ctx, g.ID)
	req.NoError(err)
	req.Equal(g.ID, fetched.ID)
	req.Equal(g.Media, fetched.Media)
	req.True(g.ScheduledAt.Equal(*fetched.ScheduledAt))
	req.True(g.CreatedAt.Equal(fetched.CreatedAt))

	_, err = repo.GetGreeting(ctx, "missing")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestGreetingRepository_Pending_Index_Follows_Status(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewGreetingRepository(openInMemory(t), slog.Default())
	now := time.Now().UTC()

	// Given one pending and one sent greeting
	_, err := repo.InsertGreeting(ctx, newGreeting("g1", "alice", domain.StatusPending, now))
	req.NoError(err)
	_, err = repo.InsertGreeting(ctx, newGreeting("g2", "alice", domain.StatusSent, now))
	req.NoError(err)

	pending, err := repo.ListPendingGreetings(ctx)
	req.NoError(err)
	req.Len(pending, 1)
	req.Equal(domain.GreetingID("g1"), pending[0].ID)

	// When the pending one is sent
	updated, err := repo.UpdateGreetingStatus(ctx, "g1", domain.StatusSent, now.Add(time.Minute))
	req.NoError(err)
	req.Equal(domain.StatusSent, updated.Status)
	req.True(now.Add(time.Minute).Equal(updated.UpdatedAt))

	// Then it leaves the pending index
	pending, err = repo.ListPendingGreetings(ctx)
	req.NoError(err)
	req.Empty(pending)
}

func TestGreetingRepository_ListBySender_Most_Recent_First(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewGreetingRepository(openInMemory(t), slog.Default())
	now := time.Now().UTC()

	for i, id := range []string{"g1", "g2", "g3"} {
		_, err := repo.InsertGreeting(ctx, newGreeting(id, "alice", domain.StatusSent, now.Add(time.Duration(i)*time.Minute)))
		req.NoError(err)
	}
	_, err := repo.InsertGreeting(ctx, newGreeting("other", "carol", domain.StatusSent, now))
	req.NoError(err)

	greetings, err := repo.ListGreetingsBySender(ctx, "alice")
	req.NoError(err)
	req.Len(greetings, 3)
	req.Equal(domain.GreetingID("g3"), greetings[0].ID)
	req.Equal(domain.GreetingID("g1"), greetings[2].ID)

	// Deleting removes it from every index
	req.NoError(repo.DeleteGreeting(ctx, "g3"))
	greetings, err = repo.ListGreetingsBySender(ctx, "alice")
	req.NoError(err)
	req.Len(greetings, 2)
	req.ErrorIs(repo.DeleteGreeting(ctx, "g3"), errors.ErrNotFound)
}

func TestGreetingRepository_Update_Unknown(t *testing.T) {
	req := require.New(t)
	repo := NewGreetingRepository(openInMemory(t), slog.Default())

	_, err := repo.UpdateGreetingStatus(context.Background(), "nope", domain.StatusSent, time.Now())
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestInspectRow_Decodes_Greeting(t *testing.T) {
	req := require.New(t)
	g := domain.Greeting{
		ID:            "g1",
		SenderID:      "alice",
		RecipientType: domain.RecipientUser,
		RecipientID:   "bob",
		Message:       "Hello Bob",
		Status:        domain.StatusSent,
	}
	val, err := marshal(fromGreeting(g))
	req.NoError(err)

	row := InspectRow(greetingKey(g.ID), val)
	req.Equal("GREETING", row.Type)
	req.Contains(row.Detail, "alice -> user:bob [sent]")

	row = InspectRow("greeting:broken", []byte{0xff})
	req.Equal("Error: unmarshal failed", row.Detail)
}
