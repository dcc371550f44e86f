package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The game has no authentication layer; origin checks would only
	// give a false sense of one
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and runs the connection's pumps. Blocks
// until the connection dies.
func ServeWS(w http.ResponseWriter, r *http.Request, registry *Registry, logger *slog.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := newClient(conn, registry, logger.With(slog.String("component", "ws-client")))
	go client.writePump()
	client.readPump()
}
