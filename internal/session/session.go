// Package session hosts running matches. A Session owns the authoritative
// state of one match and serializes every mutation through a single
// goroutine, so the pure engine below it never sees concurrent access. Dice
// are rolled here, server-side; client-supplied dice values are discarded.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sunandbean/cashflow-server-go/internal/game"
)

// submission couriers one action into the writer goroutine and carries the
// result back.
type submission struct {
	action game.Action
	reply  chan game.Result
}

// Session is one running match.
type Session struct {
	ID string

	logger *zap.Logger
	dice   *rand.Rand

	actions chan submission
	done    chan struct{}
	closed  sync.Once

	mu          sync.RWMutex
	state       *game.GameState
	record      *game.Record
	subscribers map[string]chan *game.GameState
}

// NewSession creates a match from player setups. The seed fixes both deck
// order and the server's dice rolls, so a session created twice with the
// same inputs and submissions plays out identically.
func NewSession(id string, setups []game.PlayerSetup, seed int64, logger *zap.Logger) (*Session, error) {
	if id == "" {
		id = uuid.New().String()
	}
	state, err := game.CreateGame(id, setups, seed)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	return &Session{
		ID:          id,
		logger:      logger.With(zap.String("game_id", id)),
		dice:        rand.New(rand.NewSource(seed ^ 0x5dee7)),
		actions:     make(chan submission),
		done:        make(chan struct{}),
		state:       state,
		record:      game.NewRecord(id, setups, seed),
		subscribers: make(map[string]chan *game.GameState),
	}, nil
}

// Run drives the writer goroutine until the context ends or Close is called.
// All state transitions happen on this goroutine.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case sub := <-s.actions:
			sub.reply <- s.apply(sub.action)
		}
	}
}

// apply rolls dice where needed, runs the action through the engine, records
// it and fans the new state out. Only the Run goroutine calls this.
func (s *Session) apply(action game.Action) game.Result {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	if action.Type == game.ActionRollDice {
		action.Dice = s.rollFor(state, action)
	}

	next, res := game.ProcessAction(state, action)

	s.mu.Lock()
	s.state = next
	if res.OK() {
		s.record.Append(action)
	}
	s.mu.Unlock()

	if res.OK() {
		s.logger.Info("action applied",
			zap.String("action", string(action.Type)),
			zap.String("player_id", action.PlayerID),
			zap.String("phase", next.Phase.String()),
		)
		s.broadcast()
	} else {
		s.logger.Debug("action rejected",
			zap.String("action", string(action.Type)),
			zap.String("player_id", action.PlayerID),
			zap.String("code", res.Code.String()),
			zap.String("reason", res.Reason),
		)
	}
	return res
}

// rollFor produces the authoritative dice for a roll action: two dice on the
// fast track or when the player spends a charity turn, one otherwise.
func (s *Session) rollFor(state *game.GameState, action game.Action) []int {
	count := 1
	current := state.Current()
	if current.FastTrack {
		count = 2
	} else if current.CharityTurns > 0 && action.UseTwoDice {
		count = 2
	}
	dice := make([]int, count)
	for i := range dice {
		dice[i] = s.dice.Intn(6) + 1
	}
	return dice
}

// Submit queues an action and waits for its result.
func (s *Session) Submit(ctx context.Context, action game.Action) (game.Result, error) {
	sub := submission{action: action, reply: make(chan game.Result, 1)}
	select {
	case s.actions <- sub:
	case <-s.done:
		return game.Result{}, fmt.Errorf("session %s is closed", s.ID)
	case <-ctx.Done():
		return game.Result{}, ctx.Err()
	}
	select {
	case res := <-sub.reply:
		return res, nil
	case <-ctx.Done():
		return game.Result{}, ctx.Err()
	}
}

// State returns the current authoritative state. Callers must not mutate it.
func (s *Session) State() *game.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// PublicState returns the current state with deck contents blanked, safe to
// send to clients.
func (s *Session) PublicState() *game.GameState {
	return game.Sanitize(s.State())
}

// Record returns a copy of the replay record so far.
func (s *Session) Record() game.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec := *s.record
	rec.Actions = append([]game.Action(nil), s.record.Actions...)
	return rec
}

// Subscribe registers a listener for sanitized state updates. Slow listeners
// miss updates rather than blocking the writer.
func (s *Session) Subscribe(subscriberID string) <-chan *game.GameState {
	ch := make(chan *game.GameState, 8)
	s.mu.Lock()
	s.subscribers[subscriberID] = ch
	s.mu.Unlock()
	return ch
}

// Unsubscribe drops a listener.
func (s *Session) Unsubscribe(subscriberID string) {
	s.mu.Lock()
	if ch, ok := s.subscribers[subscriberID]; ok {
		delete(s.subscribers, subscriberID)
		close(ch)
	}
	s.mu.Unlock()
}

// broadcast fans the sanitized state out to every subscriber.
func (s *Session) broadcast() {
	public := s.PublicState()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- public:
		default:
		}
	}
}

// Over reports whether the match has finished.
func (s *Session) Over() bool {
	return s.State().Phase == game.PhaseGameOver
}

// Close stops the session. Pending Submit calls fail.
func (s *Session) Close() {
	s.closed.Do(func() {
		close(s.done)
		s.mu.Lock()
		for id, ch := range s.subscribers {
			delete(s.subscribers, id)
			close(ch)
		}
		s.mu.Unlock()
	})
}
