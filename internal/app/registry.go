package app

import (
	"sync"

	"go.uber.org/zap"

	"wordduel/internal/domain"
)

// Registry tracks live connections and their client metadata. Pure
// bookkeeping, no business logic.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	logger  *zap.Logger
}

// NewRegistry creates an empty connection registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		clients: make(map[string]*domain.Client),
		logger:  logger,
	}
}

// Register records a freshly connected client
func (r *Registry) Register(client *domain.Client) {
	r.mu.Lock()
	r.clients[client.ID] = client
	count := len(r.clients)
	r.mu.Unlock()

	r.logger.Info("client connected", zap.String("clientId", client.ID), zap.Int("connections", count))
}

// Lookup returns the client for a connection id
func (r *Registry) Lookup(clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// SetProfile stores the name and avatar a client supplied on join
func (r *Registry) SetProfile(clientID, name, avatar string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[clientID]; ok {
		client.Name = name
		client.Avatar = avatar
	}
}

// AssociateSession links a client to an active game session
func (r *Registry) AssociateSession(clientID, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[clientID]; ok {
		client.SessionID = sessionID
	}
}

// AssociateRoom links a client to a private room
func (r *Registry) AssociateRoom(clientID, roomCode string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[clientID]; ok {
		client.RoomCode = roomCode
	}
}

// ClearSession removes a client's session association
func (r *Registry) ClearSession(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[clientID]; ok {
		client.SessionID = ""
	}
}

// Remove deletes a client on disconnect
func (r *Registry) Remove(clientID string) {
	r.mu.Lock()
	delete(r.clients, clientID)
	count := len(r.clients)
	r.mu.Unlock()

	r.logger.Info("client removed", zap.String("clientId", clientID), zap.Int("connections", count))
}

// Count returns the number of live connections
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// IDs returns the ids of all live connections
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	return ids
}
