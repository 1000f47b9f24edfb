package ws

import (
	"encoding/json"
	"time"

	"wordduel/internal/domain"
)

// Client → server message types
const (
	MsgJoinGame             = "join-game"
	MsgLeaveQueue           = "leave-queue"
	MsgCreatePrivateRoom    = "create-private-room"
	MsgJoinPrivateRoom      = "join-private-room"
	MsgSelectAnswerMode     = "select-answer-mode"
	MsgSubmitStory          = "submit-story"
	MsgSubmitTranslation    = "submit-translation-answer"
	MsgGenerateConversation = "generate-conversation"
	MsgPing                 = "ping"
)

// ClientMessage is the envelope of a message from client to server
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage is the envelope of a message from server to client
type ServerMessage struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewServerMessage wraps a payload with the current timestamp
func NewServerMessage(msgType string, payload any) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// JoinGamePayload is the payload for join-game and create-private-room
type JoinGamePayload struct {
	Name            string                 `json:"name"`
	Avatar          string                 `json:"avatar"`
	GameMode        domain.GameMode        `json:"gameMode"`
	TranslationMode domain.TranslationMode `json:"translationMode,omitempty"`
}

// JoinRoomPayload is the payload for join-private-room
type JoinRoomPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerData struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	} `json:"playerData"`
}

// SelectAnswerModePayload is the payload for select-answer-mode
type SelectAnswerModePayload struct {
	GameID     string            `json:"gameId,omitempty"`
	AnswerMode domain.AnswerMode `json:"answerMode"`
}

// SubmitStoryPayload is the payload for submit-story
type SubmitStoryPayload struct {
	GameID    string   `json:"gameId,omitempty"`
	Story     string   `json:"story"`
	UsedWords []string `json:"usedWords,omitempty"`
}

// SubmitTranslationPayload is the payload for submit-translation-answer
type SubmitTranslationPayload struct {
	GameID string `json:"gameId,omitempty"`
	Answer string `json:"answer"`
}

// GenerateConversationPayload is the payload for generate-conversation
type GenerateConversationPayload struct {
	Topic      string   `json:"topic"`
	Characters []string `json:"characters"`
	WordCount  int      `json:"wordCount"`
}

// ErrorPayload carries a named error back to the sender
type ErrorPayload struct {
	Message string `json:"message"`
}
