package domain

// Service is a bookable catalog entry. Owned by the backend; the client reads
// it publicly and mutates it only through administrator operations.
type Service struct {
	ID              int64   `json:"id_service"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"state"`
}
