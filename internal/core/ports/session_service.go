package ports

import (
	"context"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// SessionService is the full session use-case surface: the read side plus
// the operations that move the session between authenticated states.
type SessionService interface {
	Session

	// Login submits credentials and, on success, stores the returned token
	// and notifies subscribers. On failure the previous state is untouched.
	Login(ctx context.Context, creds Credentials) error
	// Logout clears the session. Idempotent.
	Logout()
	// Register creates an account without establishing a session.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Invalidate drops the session after the server rejected the token (401).
	Invalidate()
	// Subscribe registers an observer for authentication-state transitions.
	// Observers run synchronously with the store mutation.
	Subscribe(fn func(authenticated bool))
}
