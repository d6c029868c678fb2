package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// CatalogGateway talks to the backend's /services endpoints. Reads need no
// token; mutations carry the session's token and are admin-only server-side.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := g.client.get(ctx, "/services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (g *CatalogGateway) Get(ctx context.Context, id int64) (*domain.Service, error) {
	var service domain.Service
	if err := g.client.get(ctx, fmt.Sprintf("/services/%d", id), &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (g *CatalogGateway) Create(ctx context.Context, input ports.ServiceInput) error {
	return g.client.send(ctx, http.MethodPost, "/services", input, nil)
}

func (g *CatalogGateway) Update(ctx context.Context, id int64, input ports.ServiceInput) error {
	return g.client.send(ctx, http.MethodPut, fmt.Sprintf("/services/%d", id), input, nil)
}

func (g *CatalogGateway) Delete(ctx context.Context, id int64) error {
	return g.client.send(ctx, http.MethodDelete, fmt.Sprintf("/services/%d", id), nil, nil)
}
