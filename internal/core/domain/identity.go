package domain

// Role identifies what kind of account a token belongs to. Values match the
// backend's role ids.
type Role int

const (
	RoleAdmin  Role = 1
	RoleClient Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleClient:
		return "client"
	}
	return "unknown"
}

// Identity is the profile derived from decoding the bearer token locally.
// It is advisory: it drives navigation and personalization only, never
// server-side authorization, which the backend enforces on every call.
type Identity struct {
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// IsAdmin reports whether the decoded role grants the administrator areas.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Capability names a class of actions a navigation target may require.
type Capability string

const (
	// CapBrowseCatalog is granted to everyone, including anonymous visitors.
	CapBrowseCatalog Capability = "catalog:browse"
	// CapBookServices covers creating, listing and cancelling own reservations.
	CapBookServices Capability = "reservations:own"
	// CapManageCatalog covers creating, updating and deleting services.
	CapManageCatalog Capability = "catalog:manage"
	// CapManageRoster covers listing, updating and (de)activating users.
	CapManageRoster Capability = "roster:manage"
	// CapManageReservations covers the administrator view over all bookings.
	CapManageReservations Capability = "reservations:all"
)

// CapabilitySet is the set of capabilities held by an identity.
type CapabilitySet map[Capability]struct{}

// Has reports membership of a single capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// HasAll reports whether every required capability is present.
func (s CapabilitySet) HasAll(required ...Capability) bool {
	for _, c := range required {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// AnonymousCapabilities is what an unauthenticated visitor may do.
func AnonymousCapabilities() CapabilitySet {
	return CapabilitySet{CapBrowseCatalog: {}}
}

// Capabilities derives the capability set from the identity's role. Admins
// hold a strict superset of client capabilities.
func (i Identity) Capabilities() CapabilitySet {
	caps := CapabilitySet{
		CapBrowseCatalog: {},
		CapBookServices:  {},
	}
	if i.Role == RoleAdmin {
		caps[CapManageCatalog] = struct{}{}
		caps[CapManageRoster] = struct{}{}
		caps[CapManageReservations] = struct{}{}
	}
	return caps
}
