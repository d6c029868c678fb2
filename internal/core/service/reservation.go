package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// minimumNotice is how far ahead of wall-clock time a booking must be
// scheduled. Enforced here for UX only; the server stays authoritative.
const minimumNotice = 24 * time.Hour

// ReservationService drives the reservation lifecycle from the client side.
// It keeps the last fetched owned-reservations view and refreshes it from
// the backend after every successful mutation. Reservation status is owned
// by the server, so nothing here mutates a status optimistically.
type ReservationService struct {
	gateway  ports.ReservationGateway
	session  ports.Session
	validate *inputValidator
	now      func() time.Time
	log      zerolog.Logger

	mu   sync.Mutex
	mine []domain.Reservation
}

func NewReservationService(gateway ports.ReservationGateway, session ports.Session, log zerolog.Logger) *ReservationService {
	return &ReservationService{
		gateway:  gateway,
		session:  session,
		validate: newInputValidator(),
		now:      time.Now,
		log:      log.With().Str("component", "reservations").Logger(),
	}
}

// Create books a service for the authenticated user. The backend infers the
// owner from the bearer token; the client never supplies it. After a
// successful create the owned view is refreshed, and the new reservation is
// returned as the backend reports it.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (*domain.Reservation, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validate.check(input); err != nil {
		return nil, err
	}
	if input.ScheduledAt.Before(s.now().Add(minimumNotice)) {
		return nil, fmt.Errorf("%w: reservations must be scheduled at least one day ahead", domain.ErrValidation)
	}

	id, err := s.gateway.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("reservation_id", id).Int64("service_id", input.ServiceID).Msg("reservation created")

	reservations, err := s.refresh(ctx)
	if err != nil {
		// The booking exists; only the refreshed view is missing.
		return nil, fmt.Errorf("reservation %d created but list refresh failed: %w", id, err)
	}
	for i := range reservations {
		if reservations[i].ID == id {
			created := reservations[i]
			return &created, nil
		}
	}
	return &domain.Reservation{ID: id, ServiceID: input.ServiceID}, nil
}

// ListMine fetches the current user's reservations and caches the view.
// Ownership scoping is a server contract: the backend filters by the token's
// subject, not by anything the client sends.
func (s *ReservationService) ListMine(ctx context.Context) ([]domain.Reservation, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.refresh(ctx)
}

// Mine returns a copy of the last fetched view without touching the network.
func (s *ReservationService) Mine() []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Reservation, len(s.mine))
	copy(out, s.mine)
	return out
}

// Summary aggregates the last fetched view per lifecycle state.
func (s *ReservationService) Summary() domain.ReservationSummary {
	return domain.Summarize(s.Mine())
}

// Cancel requests cancellation of one reservation and refreshes the view on
// success. The action is only offered for cancellable statuses, but the
// request is issued regardless: a terminal-state target is rejected by the
// server and that rejection is surfaced as a domain error, never swallowed.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if err := s.gateway.Cancel(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("reservation_id", id).Msg("reservation cancelled")
	if _, err := s.refresh(ctx); err != nil {
		return fmt.Errorf("reservation %d cancelled but list refresh failed: %w", id, err)
	}
	return nil
}

// ListAll returns every reservation in the system. Administrator call.
func (s *ReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.gateway.ListAll(ctx)
}

// Get returns one reservation by id. The server rejects targets the caller
// does not own unless the caller is an administrator.
func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.gateway.Get(ctx, id)
}

// SetStatus moves a reservation to a new lifecycle state. Administrator
// call. Illegal transitions are logged as a hint but still issued: the
// server owns the state machine and its answer is the real one.
func (s *ReservationService) SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if current, err := s.gateway.Get(ctx, id); err == nil {
		if from := current.Status(); !from.CanTransitionTo(status) {
			s.log.Warn().
				Int64("reservation_id", id).
				Stringer("from", from).
				Stringer("to", status).
				Msg("requesting a transition the lifecycle does not define")
		}
	}
	return s.gateway.SetStatus(ctx, id, status)
}

// Delete soft-deletes a reservation. Administrator call.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	return s.gateway.Delete(ctx, id)
}

func (s *ReservationService) refresh(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.gateway.ListMine(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.mine = reservations
	s.mu.Unlock()

	out := make([]domain.Reservation, len(reservations))
	copy(out, reservations)
	return out, nil
}
