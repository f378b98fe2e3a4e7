package runtime

import (
	"greeting-hub/domain"
)

// Router maps a logical target to the connections interested in it.
// It never caches: every call reads the registry state of that instant.
type Router struct {
	registry *Registry
}

func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Resolve returns the live connections of a target.
// A user target yields every connection of that user (one per device),
// a group target every connection that joined the group.
func (r *Router) Resolve(target domain.Target) []*Connection {
	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	switch target.Type {
	case domain.TargetUser:
		return r.registry.connectionsOf(r.registry.userConns[domain.UserID(target.ID)])
	case domain.TargetGroup:
		return r.registry.connectionsOf(r.registry.groupConns[domain.GroupID(target.ID)])
	default:
		return nil
	}
}

func (r *Router) HasSubscribers(target domain.Target) bool {
	r.registry.mu.RLock()
	defer r.registry.mu.RUnlock()

	switch target.Type {
	case domain.TargetUser:
		return len(r.registry.userConns[domain.UserID(target.ID)]) > 0
	case domain.TargetGroup:
		return len(r.registry.groupConns[domain.GroupID(target.ID)]) > 0
	default:
		return false
	}
}
