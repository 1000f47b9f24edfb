package app

// Sender is the narrow transport adapter the session core emits through.
// The engine is written against this interface only, so any connection
// technology can carry the protocol. Sending to an unknown or
// since-disconnected client is a silent no-op, never an error.
type Sender interface {
	Send(clientID, msgType string, payload any)
	Broadcast(clientIDs []string, msgType string, payload any)
}

// Server → client message types
const (
	MsgWaitingPlayersUpdate  = "waiting-players-update"
	MsgRoomCreated           = "room-created"
	MsgRoomUpdated           = "room-updated"
	MsgRoomError             = "room-error"
	MsgPlayerLeft            = "player-left"
	MsgGameStart             = "game-start"
	MsgSelectAnswerMode      = "select-answer-mode"
	MsgNextRound             = "next-round"
	MsgRoundResult           = "round-result"
	MsgGameResults           = "game-results"
	MsgOpponentDisconnected  = "opponent-disconnected"
	MsgJoinError             = "join-error"
	MsgGameError             = "game-error"
	MsgConversation          = "conversation"
	MsgConversationError     = "conversation-error"
	MsgPong                  = "pong"
)
