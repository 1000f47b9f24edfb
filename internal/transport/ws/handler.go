package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"wordduel/internal/app"
)

// Handler upgrades HTTP requests to websocket connections and wires each
// one into the hub.
type Handler struct {
	hub      *app.Hub
	clients  *ClientSet
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewHandler creates the websocket entry point. The returned handler's
// ClientSet doubles as the hub's Sender.
func NewHandler(hub *app.Hub, clients *ClientSet, logger *zap.Logger) *Handler {
	return &Handler{
		hub:     hub,
		clients: clients,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The protocol carries no credentials; origin checks are
				// left to the reverse proxy.
				return true
			},
		},
		logger: logger,
	}
}

// ServeHTTP handles websocket upgrade requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	clientID := uuid.New().String()
	mobile := r.URL.Query().Get("mobile") == "1" || r.URL.Query().Get("mobile") == "true"

	client := NewClient(clientID, conn, h.hub, h.logger)
	h.clients.Add(client)
	h.hub.Connect(clientID, mobile)

	h.logger.Info("websocket connected",
		zap.String("clientId", clientID),
		zap.Bool("mobile", mobile),
	)

	client.Run()

	// Run returns when the connection dies.
	h.clients.Remove(clientID)
	h.hub.Disconnect(clientID)
	h.logger.Info("websocket disconnected", zap.String("clientId", clientID))
}
