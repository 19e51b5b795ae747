// Package follow serves a read-only live view of a running
// presentation over HTTP. Followers load a small page that mirrors the
// presenter's current slide through a WebSocket; every navigation
// change is pushed as an Update, and late joiners immediately receive
// the most recent one so they land mid-deck instead of on a blank page.
package follow

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lecterntools/lectern/logging"
)

const (
	// Time allowed to write a message to a follower.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong before the connection is
	// considered dead.
	pongWait = 60 * time.Second

	// Ping period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Followers never send anything meaningful, so the read limit
	// stays small.
	maxMessageSize = 512
)

// Hub fans updates out to connected followers.
type Hub struct {
	followers  map[*follower]bool
	broadcast  chan []byte
	register   chan *follower
	unregister chan *follower

	// last is replayed to each newly registered follower.
	last []byte

	mu     sync.RWMutex
	logger *logrus.Entry
}

// NewHub creates a hub with no followers.
func NewHub() *Hub {
	return &Hub{
		followers:  make(map[*follower]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *follower),
		unregister: make(chan *follower),
		logger:     logging.NewLogger("follow"),
	}
}

// Run pumps registrations and broadcasts until ctx is done. All map
// mutation happens here.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case f := <-h.register:
			h.mu.Lock()
			h.followers[f] = true
			last := h.last
			count := len(h.followers)
			h.mu.Unlock()

			if last != nil {
				select {
				case f.send <- last:
				default:
				}
			}
			h.logger.WithField("followers", count).Debug("Follower connected")

		case f := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.followers[f]; ok {
				delete(h.followers, f)
				close(f.send)
			}
			count := len(h.followers)
			h.mu.Unlock()

			h.logger.WithField("followers", count).Debug("Follower disconnected")

		case msg := <-h.broadcast:
			h.mu.Lock()
			h.last = msg
			for f := range h.followers {
				select {
				case f.send <- msg:
				default:
					// The follower's writer is stuck; drop it
					// rather than stall everyone else.
					close(f.send)
					delete(h.followers, f)
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for f := range h.followers {
				close(f.send)
				delete(h.followers, f)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish queues u for every follower. It never blocks the caller: the
// presenter publishes from its input loop, and a slow hub must not make
// keystrokes lag.
func (h *Hub) Publish(u Update) {
	if u.Timestamp == "" {
		u.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(u)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal update")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("Broadcast queue full, dropping update")
	}
}

// Followers returns the number of connected followers.
func (h *Hub) Followers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.followers)
}

// follower is one WebSocket connection being mirrored to.
type follower struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump drains the connection so close frames and pongs are
// processed. Follower input is discarded; the stream is one-way.
func (f *follower) readPump() {
	defer func() {
		f.hub.unregister <- f
		f.conn.Close()
	}()

	f.conn.SetReadLimit(maxMessageSize)
	f.conn.SetReadDeadline(time.Now().Add(pongWait))
	f.conn.SetPongHandler(func(string) error {
		f.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := f.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				f.hub.logger.WithError(err).Debug("Follower read error")
			}
			break
		}
	}
}

// writePump forwards queued updates and keeps the connection alive
// with pings. Updates queued behind the first are coalesced into the
// same frame, newline separated; the page keeps only the newest.
func (f *follower) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		f.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-f.send:
			f.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				f.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := f.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(msg)

			n := len(f.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-f.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			f.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := f.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
