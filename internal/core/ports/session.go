package ports

import "github.com/reservaplus/booking-client/internal/core/domain"

// Session is the read side of the session store. Components that only need
// to ask "who is logged in right now" depend on this instead of the full
// store.
type Session interface {
	// IsAuthenticated is a pure predicate over token presence. No I/O.
	IsAuthenticated() bool
	// CurrentIdentity recomputes the identity from the stored token on every
	// call. ok is false when no token is present or decoding fails.
	CurrentIdentity() (identity domain.Identity, ok bool)
	// Token returns the raw bearer token, or "" when logged out.
	Token() string
}
