package ports

import (
	"context"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// ReservationService defines the reservation lifecycle use-cases. Every
// successful mutation refreshes the owned-reservations view from the backend:
// status ownership stays with the server, never mutated optimistically here.
type ReservationService interface {
	// Create books a service for the authenticated user and returns the new
	// reservation as the backend reports it after the refresh.
	Create(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error)
	// ListMine fetches and caches the current user's reservations.
	ListMine(ctx context.Context) ([]domain.Reservation, error)
	// Mine returns the last fetched view without touching the network.
	Mine() []domain.Reservation
	// Summary aggregates the last fetched view per lifecycle state.
	Summary() domain.ReservationSummary
	// Cancel requests cancellation of one reservation, then refreshes the
	// view. The server's rejection of a terminal-state target surfaces as a
	// domain error.
	Cancel(ctx context.Context, id int64) error

	// Administrator operations.
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
}
