package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// RosterService exposes user management. Every operation is administrator
// territory and every call requires a session; the admin role itself is
// enforced by the server on each request.
type RosterService struct {
	gateway  ports.RosterGateway
	session  ports.Session
	validate *inputValidator
	log      zerolog.Logger
}

func NewRosterService(gateway ports.RosterGateway, session ports.Session, log zerolog.Logger) *RosterService {
	return &RosterService{
		gateway:  gateway,
		session:  session,
		validate: newInputValidator(),
		log:      log.With().Str("component", "roster").Logger(),
	}
}

func (s *RosterService) List(ctx context.Context) ([]domain.User, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.gateway.List(ctx)
}

func (s *RosterService) Get(ctx context.Context, id int64) (*domain.User, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.gateway.Get(ctx, id)
}

func (s *RosterService) Update(ctx context.Context, id int64, input ports.UserUpdateInput) (*domain.User, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validate.check(input); err != nil {
		return nil, err
	}
	user, err := s.gateway.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return user, nil
}

// Deactivate soft-disables an account. The record is kept; reservations and
// history stay attached to it.
func (s *RosterService) Deactivate(ctx context.Context, id int64) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if err := s.gateway.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deactivated")
	return nil
}

// Activate re-enables a previously deactivated account.
func (s *RosterService) Activate(ctx context.Context, id int64) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if err := s.gateway.Activate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user activated")
	return nil
}
