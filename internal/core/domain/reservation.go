package domain

import "time"

// ReservationStatus represents the lifecycle state of a booking. Values match
// the backend's status ids.
type ReservationStatus int

const (
	StatusPending   ReservationStatus = 1
	StatusConfirmed ReservationStatus = 2
	StatusCancelled ReservationStatus = 3
	StatusCompleted ReservationStatus = 4
)

// wireStatusNames maps the status names the backend sends to their ids. Used
// as a fallback when a payload carries the name but not the id.
var wireStatusNames = map[string]ReservationStatus{
	"Pendiente":  StatusPending,
	"Confirmado": StatusConfirmed,
	"Cancelado":  StatusCancelled,
	"Completado": StatusCompleted,
}

// validTransitions defines the transitions the client ever observes. Cancelled
// and Completed are terminal.
var validTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func (s ReservationStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// StatusFromName resolves a backend status name to its id. Unknown names
// resolve to 0 (no status).
func StatusFromName(name string) ReservationStatus {
	return wireStatusNames[name]
}

// CanCancel reports whether a client-initiated cancellation is offered for a
// reservation in this status. Terminal states never qualify.
func (s ReservationStatus) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether moving to next is a legal transition. The
// check is advisory on the client: the server remains authoritative.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a booking as the backend reports it, including the
// denormalized service and owner fields that come with list responses.
type Reservation struct {
	ID            int64             `json:"id_reservation"`
	UserID        int64             `json:"id_user"`
	ServiceID     int64             `json:"id_service"`
	StatusID      ReservationStatus `json:"id_reservation_status"`
	StatusName    string            `json:"status_name,omitempty"`
	ScheduledAt   time.Time         `json:"scheduled_datetime"`
	CreatedAt     time.Time         `json:"created_at"`
	TotalPrice    float64           `json:"total_price"`
	PaymentMethod string            `json:"payment_method"`
	Active        bool              `json:"state"`

	ServiceName        string `json:"service_name,omitempty"`
	ServiceDescription string `json:"service_description,omitempty"`
	DurationMinutes    int    `json:"duration_minutes,omitempty"`
	OwnerFirstName     string `json:"first_name,omitempty"`
	OwnerLastName      string `json:"last_name,omitempty"`
	OwnerEmail         string `json:"email,omitempty"`
}

// Status resolves the effective lifecycle state, preferring the numeric id
// and falling back to the name when the id is absent.
func (r Reservation) Status() ReservationStatus {
	if r.StatusID != 0 {
		return r.StatusID
	}
	return StatusFromName(r.StatusName)
}

// CanCancel reports whether the cancel action should be offered for this
// reservation.
func (r Reservation) CanCancel() bool {
	return r.Status().CanCancel()
}

// ReservationSummary aggregates a reservation list the way the client
// dashboard presents it.
type ReservationSummary struct {
	Total     int
	Pending   int
	Confirmed int
	Cancelled int
	Completed int
}

// Summarize counts reservations per lifecycle state.
func Summarize(reservations []Reservation) ReservationSummary {
	sum := ReservationSummary{Total: len(reservations)}
	for _, r := range reservations {
		switch r.Status() {
		case StatusPending:
			sum.Pending++
		case StatusConfirmed:
			sum.Confirmed++
		case StatusCancelled:
			sum.Cancelled++
		case StatusCompleted:
			sum.Completed++
		}
	}
	return sum
}
