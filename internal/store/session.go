package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/storage"
)

// credentials is what the mock sign-in accepts: any non-empty email and
// any password of at least 6 characters.
type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type sessionStore struct {
	slot     storage.Slot
	delay    time.Duration
	validate *validator.Validate
	logger   *slog.Logger

	mu      sync.Mutex
	user    *domain.UserSession
	subs    map[int]func()
	nextSub int
}

// NewSessionStore creates a session store backed by the given durable
// slot. A prior session in the slot is restored; a missing or corrupt
// slot yields a signed-out store, never an error.
func NewSessionStore(slot storage.Slot, delay time.Duration, logger *slog.Logger) domain.SessionStore {
	s := &sessionStore{
		slot:     slot,
		delay:    delay,
		validate: validator.New(),
		logger:   logger,
		subs:     make(map[int]func()),
	}

	data, err := slot.Read()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Debug("session slot unreadable, starting signed out", slog.Any("error", err))
		}
		return s
	}

	var user domain.UserSession
	if err := json.Unmarshal(data, &user); err != nil || user.Email == "" {
		logger.Debug("session slot corrupt, starting signed out", slog.Any("error", err))
		return s
	}
	s.user = &user

	return s
}

// Login simulates a network sign-in: validate, wait the configured
// delay, then install a session. Bad credentials resolve false with no
// error; only ctx cancellation during the delay returns an error.
func (s *sessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	if err := s.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return false, nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
	}

	token, err := GenerateToken()
	if err != nil {
		return false, domain.Internal(err, "session.login", "failed to generate session token")
	}

	user := &domain.UserSession{
		ID:    token,
		Name:  strings.SplitN(email, "@", 2)[0],
		Email: email,
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.persist()
	s.notify()

	return true, nil
}

// Logout clears the session unconditionally.
func (s *sessionStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.persist()
	s.notify()
}

// Current returns a copy of the session, or nil when signed out.
func (s *sessionStore) Current() *domain.UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a session exists.
func (s *sessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Subscribe registers a change callback and returns an unsubscribe
// function.
func (s *sessionStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// persist mirrors the session into the durable slot: written when a
// session exists, erased when absent. Slot failures are fire-and-forget.
func (s *sessionStore) persist() {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()

	if user == nil {
		if err := s.slot.Erase(); err != nil {
			s.logger.Debug("failed to erase session slot", slog.Any("error", err))
		}
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Debug("failed to serialize session", slog.Any("error", err))
		return
	}
	if err := s.slot.Write(data); err != nil {
		s.logger.Debug("failed to write session slot", slog.Any("error", err))
	}
}

func (s *sessionStore) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
