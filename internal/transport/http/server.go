package http

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"wordduel/internal/app"
	"wordduel/internal/config"
	"wordduel/internal/transport/ws"
)

// Server is the HTTP front of the engine: the websocket endpoint plus a
// small diagnostics and room API.
type Server struct {
	server *http.Server
	hub    *app.Hub
	config *config.Config
	logger *zap.Logger
}

// NewServer wires the routes and the websocket handler
func NewServer(cfg *config.Config, hub *app.Hub, wsHandler *ws.Handler, logger *zap.Logger) *Server {
	s := &Server{
		hub:    hub,
		config: cfg,
		logger: logger,
	}

	router := httprouter.New()
	router.GET("/ws", wrap(wsHandler))
	router.GET("/api/health", s.handleHealth)
	router.GET("/api/stats", s.handleStats)
	router.GET("/api/rooms/:code", s.handleGetRoom)
	router.GET("/api/rooms/:code/qr", s.handleRoomQR)

	s.server = &http.Server{
		Addr:        cfg.Addr(),
		Handler:     s.logRequests(router),
		IdleTimeout: 60 * time.Second,
		// No blanket read/write timeouts: /ws connections are long-lived.
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start blocks serving requests until shutdown
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown drains the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// logRequests logs the non-websocket API traffic
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if r.URL.Path != "/ws" {
			s.logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		}
	})
}

// wrap adapts a plain http.Handler into an httprouter handle
func wrap(h http.Handler) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		h.ServeHTTP(w, r)
	}
}
