package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"dating/internal/errors"
)

// Store owns the current identity. It is read through Current and written only through
// SetCurrentUser, which mirrors the value to Storage before returning.
//
// Rehydrate must complete before anything consults Current for authorization; Wait is the
// barrier for that.
type Store struct {
	storage Storage
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.RWMutex
	current *Session
	nextID  int
	subs    map[int]func(*Session)

	ready     chan struct{}
	readyOnce sync.Once
}

func NewStore(storage Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
		now:     time.Now,
		subs:    make(map[int]func(*Session)),
		ready:   make(chan struct{}),
	}
}

// Rehydrate installs the persisted snapshot as the current identity. A missing, malformed
// or expired snapshot leaves the store empty; only storage read failures are returned.
// The ready barrier is released in every case.
func (s *Store) Rehydrate(ctx context.Context) error {
	defer s.readyOnce.Do(func() { close(s.ready) })

	data, err := s.storage.Load()
	if errors.Is(err, ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}

	var snapshot Session
	if err := json.Unmarshal(data, &snapshot); err != nil || !snapshot.Valid() {
		s.logger.WarnContext(ctx, "Ignoring malformed session snapshot", slog.Any("error", err))

		return nil
	}
	if snapshot.Expired(s.now()) {
		s.logger.InfoContext(ctx, "Persisted session has expired")

		return nil
	}

	s.mu.Lock()
	s.current = &snapshot
	s.mu.Unlock()

	return nil
}

// Wait blocks until Rehydrate has finished or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Current returns a copy of the current session, or nil when logged out or expired.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil || s.current.Expired(s.now()) {
		return nil
	}

	return s.current.clone()
}

// SetCurrentUser replaces the identity; nil logs out. The snapshot is written (or removed)
// before the in-memory cell changes and subscribers run.
func (s *Store) SetCurrentUser(session *Session) error {
	if session != nil && !session.Valid() {
		return errors.New("session requires an account id and a token")
	}

	next := session.clone()

	s.mu.Lock()
	subs, err := s.replaceLocked(next)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	notifyAll(subs, next)

	return nil
}

// UpdateMainImage mirrors a confirmed main image change into the session of accountID.
// It does nothing when that account is no longer the current identity.
func (s *Store) UpdateMainImage(accountID string, url *string) error {
	return s.updateFor(accountID, func(session *Session) {
		session.MainImageURL = url
	})
}

// UpdateDisplayName mirrors a confirmed display name change into the session of accountID.
// It does nothing when that account is no longer the current identity.
func (s *Store) UpdateDisplayName(accountID, name string) error {
	return s.updateFor(accountID, func(session *Session) {
		session.DisplayName = name
	})
}

// updateFor reads, compares and replaces the current session under one lock.
func (s *Store) updateFor(accountID string, mutate func(*Session)) error {
	s.mu.Lock()
	if s.current == nil || s.current.Expired(s.now()) || s.current.AccountID != accountID {
		s.mu.Unlock()

		return nil
	}

	next := s.current.clone()
	mutate(next)
	subs, err := s.replaceLocked(next)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	notifyAll(subs, next)

	return nil
}

// replaceLocked persists next and installs it. s.mu must be held.
func (s *Store) replaceLocked(next *Session) ([]func(*Session), error) {
	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.current = next

	subs := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	return subs, nil
}

func notifyAll(subs []func(*Session), session *Session) {
	for _, fn := range subs {
		fn(session.clone())
	}
}

// Logout clears the identity and its snapshot.
func (s *Store) Logout() error {
	return s.SetCurrentUser(nil)
}

// Subscribe registers fn to run after every identity change and returns its cancel func.
func (s *Store) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subs, id)
	}
}

func (s *Store) persist(session *Session) error {
	if session == nil {
		return s.storage.Remove()
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	return s.storage.Save(data)
}
