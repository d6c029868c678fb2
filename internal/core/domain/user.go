package domain

// User is a roster entry as administrators see it. Accounts are
// soft-deactivated via Active, never hard-deleted.
type User struct {
	ID        int64  `json:"id_user"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	RoleID    Role   `json:"id_role"`
	Active    bool   `json:"state"`
}
