// Package server tracks the players connected to a multi-session frontend.
//
// Every connection plays its own independent game; the server only keeps the
// roster, aggregates results and fans out lifecycle events such as shutdown.
package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomz197/gunrunner/internal/loop"
)

// GameServer is the interface clients use to communicate with the server.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID string)
	RecordResult(clientID string, outcome loop.Outcome, score int)
	Count() int
}

// Server keeps the roster of connected clients.
type Server struct {
	mu      sync.RWMutex
	clients map[string]*ClientHandle
	stats   Stats
	closing bool
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's registration with the server.
type ClientHandle struct {
	ID          string
	Username    string
	ConnectedAt time.Time
	EventsCh    chan ClientEvent // Events sent to client (shutdown, etc.)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// Stats aggregates finished games across all sessions.
type Stats struct {
	Connected  int // Clients registered since start
	Victories  int
	Defeats    int
	BestScore  int
	BestPlayer string
}

// NewServer creates an empty server.
func NewServer() *Server {
	return &Server{clients: make(map[string]*ClientHandle)}
}

// RegisterClient registers a new client with the given username and returns its handle.
// Clients registering after Shutdown started receive the shutdown event immediately.
func (s *Server) RegisterClient(username string) *ClientHandle {
	handle := &ClientHandle{
		ID:          uuid.NewString(),
		Username:    username,
		ConnectedAt: time.Now(),
		EventsCh:    make(chan ClientEvent, 4),
	}

	s.mu.Lock()
	s.clients[handle.ID] = handle
	s.stats.Connected++
	closing := s.closing
	s.mu.Unlock()

	if closing {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}
	return handle
}

// UnregisterClient removes a client and closes its event channel.
// Unknown IDs are ignored.
func (s *Server) UnregisterClient(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if handle, ok := s.clients[clientID]; ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
}

// RecordResult adds a finished game to the aggregate stats.
func (s *Server) RecordResult(clientID string, outcome loop.Outcome, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch outcome {
	case loop.OutcomeGameWon:
		s.stats.Victories++
	case loop.OutcomeGameOver:
		s.stats.Defeats++
	default:
		return
	}
	if score > s.stats.BestScore {
		s.stats.BestScore = score
		if handle, ok := s.clients[clientID]; ok {
			s.stats.BestPlayer = handle.Username
		}
	}
}

// Count returns the number of connected clients.
func (s *Server) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Stats returns a copy of the aggregate stats.
func (s *Server) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Shutdown notifies all connected clients and waits for them to disconnect,
// up to the given timeout.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.Lock()
	s.closing = true
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Count() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
