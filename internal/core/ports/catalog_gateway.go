package ports

import (
	"context"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// ServiceInput carries the fields for creating or updating a catalog entry.
type ServiceInput struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	Active          bool    `json:"state"`
}

// CatalogGateway is the outbound port for /services. List and Get are public;
// the mutations require an administrator token server-side.
type CatalogGateway interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, input ServiceInput) error
	Update(ctx context.Context, id int64, input ServiceInput) error
	Delete(ctx context.Context, id int64) error
}
