package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// AuthGateway talks to the backend's /auth endpoints.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The endpoint is anonymous,
// so a 401 here classifies as bad credentials rather than an expired session.
func (g *AuthGateway) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	var resp loginResponse
	if err := g.client.send(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: login response carried no token", domain.ErrServerFault)
	}
	return resp.AccessToken, nil
}

// Register creates an account and returns the roster entry the backend
// created. A taken email surfaces as a validation error with the server's
// detail message.
func (g *AuthGateway) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var user domain.User
	if err := g.client.send(ctx, http.MethodPost, "/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
