package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/sunandbean/cashflow-server-go/internal/game"
)

// Manager is the registry of running sessions.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewManager creates a session manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Create builds a session, starts its writer goroutine under ctx and
// registers it.
func (m *Manager) Create(ctx context.Context, setups []game.PlayerSetup, seed int64) (*Session, error) {
	sess, err := NewSession("", setups, seed, m.logger)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	go sess.Run(ctx)

	m.logger.Info("session created",
		zap.String("game_id", sess.ID),
		zap.Int("players", len(setups)),
		zap.Int64("seed", seed),
	)
	return sess, nil
}

// Get retrieves a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Remove closes and deregisters a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		sess.Close()
		m.logger.Info("session removed", zap.String("game_id", id))
	}
}

// ActiveCount returns the number of sessions whose match is still running.
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, sess := range m.sessions {
		if !sess.Over() {
			count++
		}
	}
	return count
}

// CloseAll shuts every session down.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		sess.Close()
		delete(m.sessions, id)
	}
}
