package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// ReservationGateway talks to the backend's /reservations endpoints.
type ReservationGateway struct {
	client *Client
}

func NewReservationGateway(client *Client) *ReservationGateway {
	return &ReservationGateway{client: client}
}

// reservationOut mirrors the backend's reservation payload, including the
// denormalized service and owner columns that list responses join in.
type reservationOut struct {
	ID            int64    `json:"id_reservation"`
	UserID        int64    `json:"id_user"`
	ServiceID     int64    `json:"id_service"`
	StatusID      int      `json:"id_reservation_status"`
	StatusName    string   `json:"status_name"`
	ScheduledAt   wireTime `json:"scheduled_datetime"`
	CreatedAt     wireTime `json:"created_at"`
	TotalPrice    float64  `json:"total_price"`
	PaymentMethod string   `json:"payment_method"`
	Active        bool     `json:"state"`

	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description"`
	DurationMinutes    int    `json:"duration_minutes"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
}

func (r reservationOut) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:                 r.ID,
		UserID:             r.UserID,
		ServiceID:          r.ServiceID,
		StatusID:           domain.ReservationStatus(r.StatusID),
		StatusName:         r.StatusName,
		ScheduledAt:        r.ScheduledAt.Time,
		CreatedAt:          r.CreatedAt.Time,
		TotalPrice:         r.TotalPrice,
		PaymentMethod:      r.PaymentMethod,
		Active:             r.Active,
		ServiceName:        r.ServiceName,
		ServiceDescription: r.ServiceDescription,
		DurationMinutes:    r.DurationMinutes,
		OwnerFirstName:     r.FirstName,
		OwnerLastName:      r.LastName,
		OwnerEmail:         r.Email,
	}
}

func toDomainList(items []reservationOut) []domain.Reservation {
	out := make([]domain.Reservation, len(items))
	for i, item := range items {
		out[i] = item.toDomain()
	}
	return out
}

type createReservationRequest struct {
	ServiceID     int64    `json:"id_service"`
	ScheduledAt   wireTime `json:"scheduled_datetime"`
	PaymentMethod string   `json:"payment_method"`
}

type createReservationResponse struct {
	Msg string `json:"msg"`
	ID  int64  `json:"id_reservation"`
}

// Create submits a booking. The owner is whoever the bearer token says;
// nothing identifying the user is in the request body.
func (g *ReservationGateway) Create(ctx context.Context, input ports.CreateReservationInput) (int64, error) {
	req := createReservationRequest{
		ServiceID:     input.ServiceID,
		ScheduledAt:   wireTime{input.ScheduledAt},
		PaymentMethod: input.PaymentMethod,
	}
	var resp createReservationResponse
	if err := g.client.send(ctx, http.MethodPost, "/reservations", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (g *ReservationGateway) ListMine(ctx context.Context) ([]domain.Reservation, error) {
	var items []reservationOut
	if err := g.client.get(ctx, "/reservations/my-reservations", &items); err != nil {
		return nil, err
	}
	return toDomainList(items), nil
}

func (g *ReservationGateway) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var items []reservationOut
	if err := g.client.get(ctx, "/reservations", &items); err != nil {
		return nil, err
	}
	return toDomainList(items), nil
}

func (g *ReservationGateway) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	var item reservationOut
	if err := g.client.get(ctx, fmt.Sprintf("/reservations/%d", id), &item); err != nil {
		return nil, err
	}
	reservation := item.toDomain()
	return &reservation, nil
}

func (g *ReservationGateway) Cancel(ctx context.Context, id int64) error {
	return g.client.send(ctx, http.MethodPatch, fmt.Sprintf("/reservations/%d/cancel", id), nil, nil)
}

func (g *ReservationGateway) SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return g.client.send(ctx, http.MethodPatch, fmt.Sprintf("/reservations/%d/status/%d", id, int(status)), nil, nil)
}

func (g *ReservationGateway) Delete(ctx context.Context, id int64) error {
	return g.client.send(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, nil)
}
