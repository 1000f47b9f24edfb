package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// Response is a standard API response
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RoomResponse is the public view of a private room
type RoomResponse struct {
	RoomCode    string `json:"roomCode"`
	PlayerCount int    `json:"playerCount"`
	Status      string `json:"status"`
	GameMode    string `json:"gameMode"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.sendJSON(w, http.StatusOK, Response{Success: true, Data: map[string]string{"status": "ok"}})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.sendJSON(w, http.StatusOK, Response{Success: true, Data: s.hub.Stats()})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	room, err := s.hub.Room(p.ByName("code"))
	if err != nil {
		s.sendJSON(w, http.StatusNotFound, Response{Success: false, Error: "room not found"})
		return
	}

	s.sendJSON(w, http.StatusOK, Response{Success: true, Data: &RoomResponse{
		RoomCode:    room.Code,
		PlayerCount: len(room.Players),
		Status:      string(room.Status),
		GameMode:    string(room.Mode),
	}})
}

// handleRoomQR serves a PNG QR code of the room's invite link for sharing
// between the two players.
func (s *Server) handleRoomQR(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	room, err := s.hub.Room(p.ByName("code"))
	if err != nil {
		s.sendJSON(w, http.StatusNotFound, Response{Success: false, Error: "room not found"})
		return
	}

	link := s.inviteLink(r, room.Code)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("qr encode failed", zap.Error(err))
		s.sendJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "qr generation failed"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// inviteLink builds the join URL a second player scans or opens
func (s *Server) inviteLink(r *http.Request, code string) string {
	if base := strings.TrimRight(s.config.Server.PublicURL, "/"); base != "" {
		return base + "/join/" + code
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/join/" + code
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}
