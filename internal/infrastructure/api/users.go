package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// RosterGateway talks to the backend's /users endpoints, all admin-only
// server-side.
type RosterGateway struct {
	client *Client
}

func NewRosterGateway(client *Client) *RosterGateway {
	return &RosterGateway{client: client}
}

func (g *RosterGateway) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.client.get(ctx, "/users/", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *RosterGateway) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := g.client.get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *RosterGateway) Update(ctx context.Context, id int64, input ports.UserUpdateInput) (*domain.User, error) {
	var user domain.User
	if err := g.client.send(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *RosterGateway) Deactivate(ctx context.Context, id int64) error {
	return g.client.send(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/deactivate", id), nil, nil)
}

func (g *RosterGateway) Activate(ctx context.Context, id int64) error {
	return g.client.send(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/activate", id), nil, nil)
}
