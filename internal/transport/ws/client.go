package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"wordduel/internal/app"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client is one websocket connection being pumped
type Client struct {
	id     string
	conn   *websocket.Conn
	hub    *app.Hub
	send   chan []byte
	done   chan struct{}
	logger *zap.Logger
	mu     sync.Mutex
	closed bool
}

// NewClient wraps an upgraded connection
func NewClient(id string, conn *websocket.Conn, hub *app.Hub, logger *zap.Logger) *Client {
	return &Client{
		id:     id,
		conn:   conn,
		hub:    hub,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// ID returns the connection id
func (c *Client) ID() string {
	return c.id
}

// Enqueue queues a server message for delivery. A full buffer or a closed
// connection drops the message silently.
func (c *Client) Enqueue(msg *ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Warn("marshal server message", zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Warn("send buffer full, message dropped", zap.String("clientId", c.id))
	}
}

// Close shuts the connection down once
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps; it returns when the
// connection dies.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the websocket connection into the hub
func (c *Client) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", zap.String("clientId", c.id), zap.Error(err))
			}
			return
		}
		c.handleMessage(message)
	}
}

// writePump pumps queued messages out to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches one inbound message to the hub
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(app.MsgGameError, "invalid message format")
		return
	}

	switch msg.Type {
	case MsgJoinGame:
		c.handleJoinGame(msg.Payload)
	case MsgLeaveQueue:
		c.hub.LeaveQueue(c.id)
	case MsgCreatePrivateRoom:
		c.handleCreateRoom(msg.Payload)
	case MsgJoinPrivateRoom:
		c.handleJoinRoom(msg.Payload)
	case MsgSelectAnswerMode:
		c.handleSelectAnswerMode(msg.Payload)
	case MsgSubmitStory:
		c.handleSubmitStory(msg.Payload)
	case MsgSubmitTranslation:
		c.handleSubmitTranslation(msg.Payload)
	case MsgGenerateConversation:
		c.handleGenerateConversation(msg.Payload)
	case MsgPing:
		c.Enqueue(NewServerMessage(app.MsgPong, struct{}{}))
	default:
		c.sendError(app.MsgGameError, "unknown message type")
	}
}

func (c *Client) handleJoinGame(raw json.RawMessage) {
	var p JoinGamePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgJoinError, "invalid payload")
		return
	}
	if err := c.hub.JoinGame(c.id, p.Name, p.Avatar, p.GameMode, p.TranslationMode); err != nil {
		c.sendError(app.MsgJoinError, err.Error())
	}
}

func (c *Client) handleCreateRoom(raw json.RawMessage) {
	var p JoinGamePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgRoomError, "invalid payload")
		return
	}
	if err := c.hub.CreateRoom(c.id, p.Name, p.Avatar, p.GameMode, p.TranslationMode); err != nil {
		c.sendError(app.MsgRoomError, err.Error())
	}
}

func (c *Client) handleJoinRoom(raw json.RawMessage) {
	var p JoinRoomPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgRoomError, "invalid payload")
		return
	}
	if err := c.hub.JoinRoom(c.id, p.RoomCode, p.PlayerData.Name, p.PlayerData.Avatar); err != nil {
		c.sendError(app.MsgRoomError, err.Error())
	}
}

func (c *Client) handleSelectAnswerMode(raw json.RawMessage) {
	var p SelectAnswerModePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgGameError, "invalid payload")
		return
	}
	if err := c.hub.SelectAnswerMode(c.id, p.GameID, p.AnswerMode); err != nil {
		c.sendError(app.MsgGameError, err.Error())
	}
}

func (c *Client) handleSubmitStory(raw json.RawMessage) {
	var p SubmitStoryPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgGameError, "invalid payload")
		return
	}
	if err := c.hub.SubmitStory(c.id, p.GameID, p.Story); err != nil {
		c.sendError(app.MsgGameError, err.Error())
	}
}

func (c *Client) handleSubmitTranslation(raw json.RawMessage) {
	var p SubmitTranslationPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgGameError, "invalid payload")
		return
	}
	if err := c.hub.SubmitTranslation(c.id, p.GameID, p.Answer); err != nil {
		c.sendError(app.MsgGameError, err.Error())
	}
}

func (c *Client) handleGenerateConversation(raw json.RawMessage) {
	var p GenerateConversationPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError(app.MsgConversationError, "invalid payload")
		return
	}
	c.hub.GenerateConversation(c.id, p.Topic, p.Characters, p.WordCount)
}

// sendError reports a named error to this sender only
func (c *Client) sendError(msgType, message string) {
	c.Enqueue(NewServerMessage(msgType, &ErrorPayload{Message: message}))
}
