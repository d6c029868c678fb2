package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// CatalogService exposes the service catalog. Reads are public: anonymous
// visitors browse the catalog before registering. Mutations live behind
// administrator navigation; there is deliberately no role check here, since
// a direct network call is only ever stopped by server-side authorization.
type CatalogService struct {
	gateway  ports.CatalogGateway
	validate *inputValidator
	log      zerolog.Logger
}

func NewCatalogService(gateway ports.CatalogGateway, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		gateway:  gateway,
		validate: newInputValidator(),
		log:      log.With().Str("component", "catalog").Logger(),
	}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.gateway.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Service, error) {
	return s.gateway.Get(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ports.ServiceInput) error {
	if err := s.validate.check(input); err != nil {
		return err
	}
	if err := s.gateway.Create(ctx, input); err != nil {
		return err
	}
	s.log.Info().Str("name", input.Name).Msg("service created")
	return nil
}

func (s *CatalogService) Update(ctx context.Context, id int64, input ports.ServiceInput) error {
	if err := s.validate.check(input); err != nil {
		return err
	}
	if err := s.gateway.Update(ctx, id, input); err != nil {
		return err
	}
	s.log.Info().Int64("service_id", id).Msg("service updated")
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("service_id", id).Msg("service deleted")
	return nil
}
