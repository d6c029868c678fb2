package ports

import (
	"context"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// UserUpdateInput carries the profile fields an administrator may edit.
// Nil fields are omitted from the request and left unchanged.
type UserUpdateInput struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	RoleID    *int    `json:"id_role,omitempty" validate:"omitempty,oneof=1 2"`
}

// RosterGateway is the outbound port for /users. Every call requires an
// administrator token server-side. Deactivate and Activate flip the account's
// soft state; nothing here hard-deletes.
type RosterGateway interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error)
	Deactivate(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) error
}
