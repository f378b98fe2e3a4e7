package runtime

import (
	"greeting-hub/domain"
	"greeting-hub/errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_Refuses_Empty_Identity(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	conn, err := registry.Register(domain.Identity{}, &recordingSink{})

	req.ErrorIs(err, errors.ErrAuthRequired)
	req.Nil(conn)
	req.Zero(registry.Size())
}

func TestRegistry_Register_Binds_Identity(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given two devices of the same user
	phone, err := registry.Register(domain.Identity{UserID: "alice"}, &recordingSink{})
	req.NoError(err)
	laptop, err := registry.Register(domain.Identity{UserID: "alice"}, &recordingSink{})
	req.NoError(err)

	// Then each gets its own connection bound to alice
	req.NotEqual(phone.ID, laptop.ID)
	req.Equal(2, registry.Size())
	got, ok := registry.Get(phone.ID)
	req.True(ok)
	req.Equal(domain.UserID("alice"), got.Identity.UserID)
}

func TestRegistry_Join_And_Leave(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	conn, err := registry.Register(domain.Identity{UserID: "alice"}, &recordingSink{})
	req.NoError(err)

	// When alice joins the same group twice
	req.NoError(registry.Join(conn.ID, "book-club"))
	req.NoError(registry.Join(conn.ID, "book-club"))
	req.NoError(registry.Join(conn.ID, "chess"))

	// Then the group is only recorded once
	req.ElementsMatch([]domain.GroupID{"book-club", "chess"}, registry.JoinedGroups(conn.ID))
	req.Equal(2, registry.GroupCount())

	// When she leaves one group, and a group she never joined
	req.NoError(registry.Leave(conn.ID, "chess"))
	req.NoError(registry.Leave(conn.ID, "knitting"))

	// Then the empty group set is dropped
	req.Equal([]domain.GroupID{"book-club"}, registry.JoinedGroups(conn.ID))
	req.Equal(1, registry.GroupCount())
}

func TestRegistry_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.ErrorIs(registry.Join("ghost", "book-club"), errors.ErrUnknownConnection)
	req.ErrorIs(registry.Leave("ghost", "book-club"), errors.ErrUnknownConnection)
	req.False(registry.Unregister("ghost"))
	req.Nil(registry.JoinedGroups("ghost"))
}

func TestRegistry_Unregister_Removes_Everything_And_Closes_Sink(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := NewRouter(registry)
	sink := &recordingSink{}
	conn, err := registry.Register(domain.Identity{UserID: "alice"}, sink)
	req.NoError(err)
	req.NoError(registry.Join(conn.ID, "book-club"))

	// When the connection is unregistered twice
	req.True(registry.Unregister(conn.ID))
	req.False(registry.Unregister(conn.ID))

	// Then no route leads to it and the sink was closed exactly once
	req.Zero(registry.Size())
	req.Zero(registry.GroupCount())
	req.False(router.HasSubscribers(domain.UserTarget("alice")))
	req.False(router.HasSubscribers(domain.GroupTarget("book-club")))
	req.Equal(1, sink.closeCount())
}

func TestRegistry_Concurrent_Register_Unregister(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := registry.Register(domain.Identity{UserID: "alice"}, &recordingSink{})
			if err != nil {
				return
			}
			_ = registry.Join(conn.ID, "book-club")
			registry.Unregister(conn.ID)
		}()
	}
	wg.Wait()

	req.Zero(registry.Size())
	req.Zero(registry.GroupCount())
}
