package ws

import (
	"sync"
)

// ClientSet tracks the live websocket clients and implements app.Sender
// over them. Delivery to an id that is absent or already closed is a silent
// no-op.
type ClientSet struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewClientSet creates an empty client set
func NewClientSet() *ClientSet {
	return &ClientSet{clients: make(map[string]*Client)}
}

// Add registers a connected client
func (cs *ClientSet) Add(c *Client) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.clients[c.ID()] = c
}

// Remove drops a client
func (cs *ClientSet) Remove(clientID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.clients, clientID)
}

// Count returns the number of attached clients
func (cs *ClientSet) Count() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.clients)
}

// Send delivers one message to one client
func (cs *ClientSet) Send(clientID, msgType string, payload any) {
	cs.mu.RLock()
	client, ok := cs.clients[clientID]
	cs.mu.RUnlock()

	if !ok {
		return
	}
	client.Enqueue(NewServerMessage(msgType, payload))
}

// Broadcast delivers one message to each listed client
func (cs *ClientSet) Broadcast(clientIDs []string, msgType string, payload any) {
	msg := NewServerMessage(msgType, payload)

	cs.mu.RLock()
	targets := make([]*Client, 0, len(clientIDs))
	for _, id := range clientIDs {
		if client, ok := cs.clients[id]; ok {
			targets = append(targets, client)
		}
	}
	cs.mu.RUnlock()

	for _, client := range targets {
		client.Enqueue(msg)
	}
}
