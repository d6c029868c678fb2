package ports

// TokenStore persists the session token so it survives a process restart.
// This is the only durable client-side state in the application.
type TokenStore interface {
	// Load returns the stored token, or "" with a nil error when none exists.
	Load() (string, error)
	Save(token string) error
	// Clear removes the stored token. Clearing an absent token is not an error.
	Clear() error
}
