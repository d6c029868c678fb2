package ports

import (
	"context"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the registration form. RoleID defaults to client when
// zero; the backend applies the same default.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	RoleID    int    `json:"id_role,omitempty"`
}

// AuthGateway is the outbound port for the backend's /auth endpoints.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token. A 401 from the server
	// maps to domain.ErrInvalidCredentials; transport and server faults map
	// to their own sentinels.
	Login(ctx context.Context, creds Credentials) (token string, err error)
	// Register creates an account. It does not establish a session.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
