package storage

import (
	"context"
	"fmt"
	"greeting-hub/domain"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func chatMessage(group domain.GroupID, sender domain.UserID, content string, at time.Time) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.New(),
		GroupID:   group,
		SenderID:  sender,
		Content:   content,
		Lang:      "en",
		CreatedAt: at,
	}
}

func Test_Record_And_Get_Sorted_Messages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, NewMessageIndex(blugeWriter), slog.Default(), nil)
	group := domain.GroupID("family")
	content := "this message will self destruct in 5 seconds"
	at := time.Now().UTC()
	messages := []domain.ChatMessage{
		chatMessage(group, "alice", content, at),
		chatMessage(group, "bob", content, at.Add(1*time.Minute)),
		chatMessage(group, "clara", content, at.Add(2*time.Minute)),
	}

	sorted := make([]domain.ChatMessage, len(messages))
	copy(sorted, messages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	for _, m := range messages {
		_, err = repository.InsertChatMessage(ctx, m)
		req.NoError(err)
	}

	// When fetching messages
	fetched, _, err := repository.ListChatMessages(ctx, group, nil)
	req.NoError(err)

	// Then the messages are sorted, most recent first
	req.Len(fetched, len(sorted))
	req.Equal(sorted, fetched)
}

func Test_MessageRepository_Pagination(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	limit := 4
	repo := NewMessageRepository(badgerDB, NewMessageIndex(blugeWriter), slog.Default(), &limit)
	group := domain.GroupID("g42")
	now := time.Now().UTC()

	for i := 1; i <= 10; i++ {
		_, err = repo.InsertChatMessage(ctx, chatMessage(group, domain.UserID(fmt.Sprintf("user_%d", i)),
			fmt.Sprintf("Message %d", i), now.Add(time.Duration(i)*time.Minute)))
		req.NoError(err)
	}

	// Page 1
	msgs1, cursor1, err := repo.ListChatMessages(ctx, group, nil)
	req.NoError(err)
	req.Len(msgs1, 4)
	req.Equal(domain.UserID("user_10"), msgs1[0].SenderID)
	req.Equal(domain.UserID("user_7"), msgs1[3].SenderID)
	req.NotEmpty(*cursor1)

	// Page 2 starts right after the cursor, without duplicate
	msgs2, cursor2, err := repo.ListChatMessages(ctx, group, cursor1)
	req.NoError(err)
	req.Len(msgs2, 4)
	req.Equal(domain.UserID("user_6"), msgs2[0].SenderID)
	req.Equal(domain.UserID("user_3"), msgs2[3].SenderID)

	// Page 3 holds the remaining two
	msgs3, cursor3, err := repo.ListChatMessages(ctx, group, cursor2)
	req.NoError(err)
	req.Len(msgs3, 2)
	req.Equal(domain.UserID("user_2"), msgs3[0].SenderID)
	req.Equal(domain.UserID("user_1"), msgs3[1].SenderID)

	// Nothing after the end
	msgs4, _, err := repo.ListChatMessages(ctx, group, cursor3)
	req.NoError(err)
	req.Empty(msgs4)
}

func Test_MessageRepository_Search_Stays_In_Group(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(t.TempDir())
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, NewMessageIndex(blugeWriter), slog.Default(), nil)
	now := time.Now().UTC()

	// Given birthday talk in two groups
	inFamily := chatMessage("family", "alice", "who brings the birthday cake", now)
	_, err = repo.InsertChatMessage(ctx, inFamily)
	req.NoError(err)
	_, err = repo.InsertChatMessage(ctx, chatMessage("family", "bob", "see you on sunday", now.Add(time.Second)))
	req.NoError(err)
	_, err = repo.InsertChatMessage(ctx, chatMessage("work", "carol", "birthday party at the office", now))
	req.NoError(err)

	// When searching the family group
	found, err := repo.SearchChatMessages(ctx, "family", "birthday", 10)
	req.NoError(err)

	// Then only the family message matches
	req.Len(found, 1)
	req.Equal(inFamily.ID, found[0].ID)
}
