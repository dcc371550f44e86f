package ws

import (
	"log/slog"
	"sync"

	"github.com/jdmorgan/noughts/internal/model"
)

// Registry maps player ids to their live connection. At most one handle
// exists per id: a later registration silently replaces the earlier one.
// Entries carry a session token so a disconnecting connection only removes
// its own entry, never a newer registration for the same id.
type Registry struct {
	mu          sync.RWMutex
	entries     map[model.PlayerID]*entry
	nextSession uint64
	logger      *slog.Logger
}

type entry struct {
	client  *Client
	session uint64
}

// NewRegistry creates an empty Registry
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		entries: make(map[model.PlayerID]*entry),
		logger:  logger.With(slog.String("component", "ws-registry")),
	}
}

// Register binds a client to a player id, replacing any existing handle,
// and returns the session token the client must present to Release.
func (r *Registry) Register(id model.PlayerID, client *Client) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSession++
	session := r.nextSession

	if _, replaced := r.entries[id]; replaced {
		r.logger.Info("player re-registered, replacing handle",
			slog.String("player_id", string(id)))
	}
	r.entries[id] = &entry{client: client, session: session}

	r.logger.Info("player registered",
		slog.String("player_id", string(id)),
		slog.Int("total_players", len(r.entries)))

	return session
}

// Lookup returns the live client for a player id. Absence is a normal
// outcome, not an error.
func (r *Registry) Lookup(id model.PlayerID) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.client, true
}

// Release removes the entry for an id only if the session token still
// matches; a stale token means a newer connection owns the id now.
func (r *Registry) Release(id model.PlayerID, session uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.session != session {
		return
	}
	delete(r.entries, id)

	r.logger.Info("player released",
		slog.String("player_id", string(id)),
		slog.Int("total_players", len(r.entries)))
}

// Count returns the number of registered players
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// CloseAll force-closes every registered connection. Used at shutdown to
// release all handles.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	clients := make([]*Client, 0, len(r.entries))
	for _, e := range r.entries {
		clients = append(clients, e.client)
	}
	r.mu.RUnlock()

	for _, c := range clients {
		c.closeConn()
	}
	r.logger.Info("all connections closed", slog.Int("count", len(clients)))
}
