package runtime

import (
	"context"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/domain/event"
	"greeting-hub/errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type Set map[domain.ConnectionID]struct{}

// Connection is a live duplex channel bound to an identity for its whole life.
type Connection struct {
	ID       domain.ConnectionID
	Identity domain.Identity
	sink     contract.EventSink
	groups   map[domain.GroupID]struct{} // guarded by Registry.mu
	failures atomic.Int32
}

func (c *Connection) Send(ctx context.Context, e event.Event) error {
	return c.sink.Consume(ctx, e)
}

type Registry struct {
	mu         sync.RWMutex
	sessions   map[domain.ConnectionID]*Connection
	userConns  map[domain.UserID]Set
	groupConns map[domain.GroupID]Set
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:   make(map[domain.ConnectionID]*Connection),
		userConns:  make(map[domain.UserID]Set),
		groupConns: make(map[domain.GroupID]Set),
	}
}

// Register binds a new connection to an already verified identity.
// An empty identity means resolution did not succeed and the connection is refused.
func (r *Registry) Register(identity domain.Identity, sink contract.EventSink) (*Connection, error) {
	if identity.IsZero() {
		return nil, errors.ErrAuthRequired
	}
	conn := &Connection{
		ID:       domain.ConnectionID(uuid.NewString()),
		Identity: identity,
		sink:     sink,
		groups:   make(map[domain.GroupID]struct{}),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[conn.ID] = conn
	if _, ok := r.userConns[identity.UserID]; !ok {
		r.userConns[identity.UserID] = make(Set)
	}
	r.userConns[identity.UserID][conn.ID] = struct{}{}
	return conn, nil
}

// Unregister removes the connection and every group membership it holds.
// Unknown ids are ignored. The sink is closed once, outside the lock.
func (r *Registry) Unregister(id domain.ConnectionID) bool {
	r.mu.Lock()
	conn, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.sessions, id)

	if conns, ok := r.userConns[conn.Identity.UserID]; ok {
		delete(conns, id)
		if len(conns) == 0 {
			delete(r.userConns, conn.Identity.UserID)
		}
	}
	for groupID := range conn.groups {
		r.removeFromGroup(groupID, id)
	}
	conn.groups = nil
	r.mu.Unlock()

	conn.sink.Close()
	return true
}

// Join adds the connection to a group channel. Joining twice is a no-op.
func (r *Registry) Join(id domain.ConnectionID, groupID domain.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.sessions[id]
	if !ok {
		return errors.ErrUnknownConnection
	}
	conn.groups[groupID] = struct{}{}
	if _, ok := r.groupConns[groupID]; !ok {
		r.groupConns[groupID] = make(Set)
	}
	r.groupConns[groupID][id] = struct{}{}
	return nil
}

// Leave removes the connection from a group channel. Leaving a group not joined is a no-op.
func (r *Registry) Leave(id domain.ConnectionID, groupID domain.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.sessions[id]
	if !ok {
		return errors.ErrUnknownConnection
	}
	delete(conn.groups, groupID)
	r.removeFromGroup(groupID, id)
	return nil
}

// removeFromGroup expects r.mu to be held. Empty sets are dropped to prevent leaks.
func (r *Registry) removeFromGroup(groupID domain.GroupID, id domain.ConnectionID) {
	if members, ok := r.groupConns[groupID]; ok {
		delete(members, id)
		if len(members) == 0 {
			delete(r.groupConns, groupID)
		}
	}
}

func (r *Registry) Get(id domain.ConnectionID) (*Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.sessions[id]
	return conn, ok
}

// JoinedGroups returns a copy of the groups the connection has joined.
func (r *Registry) JoinedGroups(id domain.ConnectionID) []domain.GroupID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.sessions[id]
	if !ok {
		return nil
	}
	groups := make([]domain.GroupID, 0, len(conn.groups))
	for g := range conn.groups {
		groups = append(groups, g)
	}
	return groups
}

func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) GroupCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groupConns)
}

// connectionsOf copies the members of a set while holding the read lock.
func (r *Registry) connectionsOf(set Set) []*Connection {
	if len(set) == 0 {
		return nil
	}
	conns := make([]*Connection, 0, len(set))
	for id := range set {
		if conn, ok := r.sessions[id]; ok {
			conns = append(conns, conn)
		}
	}
	return conns
}
