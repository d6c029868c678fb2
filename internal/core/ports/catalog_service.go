package ports

import (
	"context"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// CatalogService defines the service-catalog use-cases. Reads are public;
// mutations are only reachable through administrator navigation, and the
// server enforces the role on every call regardless.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, input ServiceInput) error
	Update(ctx context.Context, id int64, input ServiceInput) error
	Delete(ctx context.Context, id int64) error
}

// RosterService defines the user-management use-cases, all administrator
// territory.
type RosterService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error)
	Deactivate(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) error
}
