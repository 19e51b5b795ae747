package follow

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lecterntools/lectern/errors"
	"github.com/lecterntools/lectern/logging"
)

// Followers join from other machines on the room network, so any
// origin may connect. The stream is one-way and read-only.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the follower page, the update stream and a health
// probe.
type Server struct {
	addr   string
	hub    *Hub
	router chi.Router
	logger *logrus.Entry
}

// NewServer creates a follow server that will listen on addr once
// started.
func NewServer(addr string) *Server {
	s := &Server{
		addr:   addr,
		hub:    NewHub(),
		logger: logging.NewLogger("follow"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)

	s.router = r
}

// logRequests logs at debug so a quiet presentation stays quiet. For
// /ws the line appears when the follower disconnects.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start).Round(time.Microsecond).String(),
			"reqID":   middleware.GetReqID(r.Context()),
		}).Debug("Request handled")
	})
}

// ServeHTTP implements http.Handler by delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Publish fans an update out to every connected follower and stores it
// for late joiners. Safe to call before Start.
func (s *Server) Publish(u Update) {
	s.hub.Publish(u)
}

// Followers returns the number of connected followers.
func (s *Server) Followers() int {
	return s.hub.Followers()
}

// Start runs the hub and the HTTP listener until ctx is cancelled.
// The caller runs it in a goroutine alongside the presenter.
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)

	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.WithField("addr", s.addr).Info("Follow server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return errors.ServerFailed(s.addr, err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(followerPage))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Error("WebSocket upgrade failed")
		return
	}

	f := &follower{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	s.hub.register <- f

	go f.writePump()
	go f.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
