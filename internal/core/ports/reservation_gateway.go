package ports

import (
	"context"
	"time"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// CreateReservationInput is the booking request a client submits. The owner
// is never supplied: the backend infers it from the bearer token.
type CreateReservationInput struct {
	ServiceID     int64     `json:"id_service" validate:"required,gt=0"`
	ScheduledAt   time.Time `json:"scheduled_datetime" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

// ReservationGateway is the outbound port for the backend's /reservations
// endpoints. ListAll, SetStatus and Delete are administrator calls; the
// server rejects them for anyone else regardless of what the client believes.
type ReservationGateway interface {
	Create(ctx context.Context, input CreateReservationInput) (id int64, err error)
	ListMine(ctx context.Context) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
}
