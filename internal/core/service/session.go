package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
	"github.com/reservaplus/booking-client/internal/token"
)

// SessionStore owns the current bearer token and is the single source of
// truth for "is a user logged in, and as what role". It is an explicit
// object passed to every consumer rather than ambient process state.
//
// Authentication-state transitions are broadcast to subscribers synchronously
// with the mutation: the token update, its persistence and the notification
// happen under one critical section, so no observer ever reads a stale state.
type SessionStore struct {
	tokens   ports.TokenStore
	auth     ports.AuthGateway
	validate *inputValidator
	log      zerolog.Logger

	mu        sync.RWMutex
	token     string
	observers []func(authenticated bool)
}

// NewSessionStore builds the store and restores any token persisted by a
// previous run. A failed restore degrades to a logged-out session.
func NewSessionStore(tokens ports.TokenStore, auth ports.AuthGateway, log zerolog.Logger) *SessionStore {
	s := &SessionStore{
		tokens:   tokens,
		auth:     auth,
		validate: newInputValidator(),
		log:      log.With().Str("component", "session").Logger(),
	}
	stored, err := tokens.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not restore persisted session")
		return s
	}
	s.token = stored
	return s
}

// Login submits credentials and, on success, stores the returned token and
// notifies subscribers. On failure the previous session state is untouched;
// the error classifies bad credentials versus transport and server faults.
func (s *SessionStore) Login(ctx context.Context, creds ports.Credentials) error {
	if err := s.validate.check(creds); err != nil {
		return err
	}

	tok, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.log.Debug().Err(err).Str("email", creds.Email).Msg("login rejected")
		return err
	}

	s.setToken(tok)
	s.log.Info().Str("email", creds.Email).Msg("session established")
	return nil
}

// Register creates an account. It does not establish a session: the user
// logs in afterwards with the new credentials.
func (s *SessionStore) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := s.validate.check(input); err != nil {
		return nil, err
	}
	if input.RoleID == 0 {
		input.RoleID = int(domain.RoleClient)
	}
	return s.auth.Register(ctx, input)
}

// Logout clears the stored token and notifies subscribers. Idempotent: with
// no active session it is a no-op and no transition is broadcast.
func (s *SessionStore) Logout() {
	if s.clearToken() {
		s.log.Info().Msg("session cleared")
	}
}

// Invalidate drops the session after the server rejected the token. Same end
// state as Logout, kept separate so callers record why the session ended.
func (s *SessionStore) Invalidate() {
	if s.clearToken() {
		s.log.Warn().Msg("session invalidated: token rejected by server")
	}
}

// IsAuthenticated reports token presence. Pure and O(1): a syntactically
// valid stored token means "authenticated" without a server round-trip.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the raw bearer token, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentIdentity recomputes the identity from the stored token on every
// call; there is no separate cache to fall out of sync. A malformed token
// degrades to "no identity" rather than forcing a logout.
func (s *SessionStore) CurrentIdentity() (domain.Identity, bool) {
	raw := s.Token()
	if raw == "" {
		return domain.Identity{}, false
	}
	identity, err := token.Decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored token does not decode")
		return domain.Identity{}, false
	}
	return identity, true
}

// Subscribe registers an observer for authentication-state transitions.
// Observers are invoked synchronously inside the mutation's critical section
// and must not call back into the store.
func (s *SessionStore) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *SessionStore) setToken(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.Save(tok); err != nil {
		// The in-memory session still works; it just won't survive a restart.
		s.log.Error().Err(err).Msg("could not persist session token")
	}
	was := s.token != ""
	s.token = tok
	if !was {
		s.broadcast(true)
	}
}

// clearToken removes the token and reports whether a transition happened.
func (s *SessionStore) clearToken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.log.Error().Err(err).Msg("could not remove persisted token")
	}
	if s.token == "" {
		return false
	}
	s.token = ""
	s.broadcast(false)
	return true
}

// broadcast runs with s.mu held.
func (s *SessionStore) broadcast(authenticated bool) {
	for _, fn := range s.observers {
		fn(authenticated)
	}
}
