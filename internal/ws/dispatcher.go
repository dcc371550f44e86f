package ws

import (
	"encoding/json"
	"log/slog"

	"github.com/jdmorgan/noughts/internal/model"
)

// Dispatcher routes domain events to connections by player id. Delivery is
// best-effort: no handle or a full send buffer drops the event without
// surfacing an error to the caller.
//
// Ordering: events enqueued for one client from a single goroutine are
// written to the wire in enqueue order. The match engine relies on this by
// emitting turn_made and game_ended for a move while holding the match lock.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher backed by the given registry
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger.With(slog.String("component", "ws-dispatcher")),
	}
}

// Send serializes the event and enqueues it on the player's connection
func (d *Dispatcher) Send(to model.PlayerID, event model.Event) {
	client, ok := d.registry.Lookup(to)
	if !ok {
		d.logger.Debug("event dropped - player not connected",
			slog.String("player_id", string(to)),
			slog.String("event_type", string(event.Type)))
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		d.logger.Error("failed to serialize event",
			slog.String("event_type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}

	if !client.enqueue(data) {
		d.logger.Warn("event dropped - send buffer full or connection closing",
			slog.String("player_id", string(to)),
			slog.String("event_type", string(event.Type)))
	}
}
