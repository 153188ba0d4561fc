package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

// Errors exposed by the service layer.
var ErrNotFound = errors.New("game not found")

// Snapshot is a read-only copy of a session handed to callers.
type Snapshot struct {
	ID      string
	View    domain.ViewModel
	Moves   []domain.Move
	Created time.Time
	Updated time.Time
}

type session struct {
	id      string
	game    *domain.Game
	created time.Time
	updated time.Time
	// seen is the last access of any kind and drives idle eviction.
	seen    time.Time
}

func (s *session) snapshot() Snapshot {
	return Snapshot{
		ID:      s.id,
		View:    s.game.ViewModel(),
		Moves:   s.game.Moves(),
		Created: s.created,
		Updated: s.updated,
	}
}

// Option configures a Service.
type Option func(*Service)

// WithTTL evicts sessions untouched for longer than ttl. Zero keeps them
// until they are ended.
func WithTTL(ttl time.Duration) Option { return func(s *Service) { s.ttl = ttl } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithIDGenerator replaces the UUID session id source.
func WithIDGenerator(gen IDGenerator) Option { return func(s *Service) { s.newID = gen } }

// Service owns every live game session. Each session has one writer, but
// HTTP handlers for different sessions run concurrently, so the map and
// the games in it are guarded by mu.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	newID    IDGenerator
	log      *zap.SugaredLogger
}

// NewService creates an empty session registry.
func NewService(log *zap.SugaredLogger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Service{
		sessions: make(map[string]*session),
		now:      time.Now,
		newID:    newUUID,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGame starts a new session with an empty board.
func (s *Service) CreateGame() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()

	now := s.now()
	sess := &session{id: s.newID(), game: domain.New(), created: now, updated: now, seen: now}
	s.sessions[sess.id] = sess
	s.log.Infow("game created", "game_id", sess.id, "sessions", len(s.sessions))
	return sess.snapshot()
}

// Get returns the session's current state.
func (s *Service) Get(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookupLocked(id)
	if err != nil {
		return Snapshot{}, err
	}
	return sess.snapshot(), nil
}

// SelectCell plays the current turn at index. A rejected move leaves the
// session as it was; the returned snapshot is valid in both cases.
func (s *Service) SelectCell(id string, index int) (Snapshot, error) {
	return s.apply(id, "select cell", index, (*domain.Game).SelectCell)
}

// SelectHistoryEntry views the snapshot at index.
func (s *Service) SelectHistoryEntry(id string, index int) (Snapshot, error) {
	return s.apply(id, "select history entry", index, (*domain.Game).SelectHistoryEntry)
}

func (s *Service) apply(id, op string, index int, fn func(*domain.Game, int) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookupLocked(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := fn(sess.game, index); err != nil {
		s.log.Debugw("action rejected", "game_id", id, "op", op, "index", index, "error", err)
		return sess.snapshot(), fmt.Errorf("%s: %w", op, err)
	}
	sess.updated = s.now()
	snap := sess.snapshot()
	s.log.Debugw("action applied", "game_id", id, "op", op, "index", index, "status", snap.View.Status.String())
	return snap, nil
}

// End discards the session.
func (s *Service) End(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookupLocked(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	s.log.Infow("game ended", "game_id", id)
	return nil
}

// Restart ends the session and starts a fresh one in its place.
func (s *Service) Restart(id string) (Snapshot, error) {
	if err := s.End(id); err != nil {
		return Snapshot{}, err
	}
	return s.CreateGame(), nil
}

// Len returns the number of live sessions.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) lookupLocked(id string) (*session, error) {
	s.evictLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.seen = s.now()
	return sess, nil
}

func (s *Service) evictLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.seen.Before(cutoff) {
			delete(s.sessions, id)
			s.log.Infow("game expired", "game_id", id)
		}
	}
}
