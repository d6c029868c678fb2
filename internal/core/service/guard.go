package service

import (
	"github.com/rs/zerolog"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
)

// Target is a protected navigation destination and the capabilities it
// requires. An empty Requires list makes the target public.
type Target struct {
	Name     string
	Requires []domain.Capability
}

// The application's navigation table.
var (
	TargetHome     = Target{Name: "home"}
	TargetLogin    = Target{Name: "login"}
	TargetRegister = Target{Name: "register"}

	TargetClientArea = Target{
		Name:     "client",
		Requires: []domain.Capability{domain.CapBookServices},
	}
	TargetAdminArea = Target{
		Name: "admin",
		Requires: []domain.Capability{
			domain.CapManageCatalog,
			domain.CapManageRoster,
			domain.CapManageReservations,
		},
	}
	TargetAdminCatalog = Target{
		Name:     "admin/services",
		Requires: []domain.Capability{domain.CapManageCatalog},
	}
	TargetAdminRoster = Target{
		Name:     "admin/users",
		Requires: []domain.Capability{domain.CapManageRoster},
	}
	TargetAdminReservations = Target{
		Name:     "admin/reservations",
		Requires: []domain.Capability{domain.CapManageReservations},
	}
)

// Decision is the outcome of evaluating the guard for one navigation attempt.
// When not allowed, RedirectTo carries the fallback destination.
type Decision struct {
	Allowed    bool
	RedirectTo Target
}

// Guard gates entry into protected navigation targets. It evaluates the
// session on every attempt, never cached, since a logout can happen between
// two attempts. The check is a capability-set test: the target is allowed
// iff every required capability is held by the current identity.
//
// The guard only steers navigation. A caller that reaches a network call
// directly is stopped by server-side authorization, the true enforcement
// point.
type Guard struct {
	session ports.Session
	log     zerolog.Logger
}

func NewGuard(session ports.Session, log zerolog.Logger) *Guard {
	return &Guard{session: session, log: log.With().Str("component", "guard").Logger()}
}

// Authorize evaluates one navigation attempt against the current session.
func (g *Guard) Authorize(target Target) Decision {
	caps := g.currentCapabilities()
	if caps.HasAll(target.Requires...) {
		return Decision{Allowed: true}
	}
	g.log.Debug().Str("target", target.Name).Msg("navigation denied")
	return Decision{Allowed: false, RedirectTo: TargetLogin}
}

// LandingTarget picks the post-login destination: administrators land in the
// admin area, everyone else in the client area, and an absent session goes
// back to the public home.
func (g *Guard) LandingTarget() Target {
	identity, ok := g.session.CurrentIdentity()
	if !ok {
		return TargetHome
	}
	if identity.IsAdmin() {
		return TargetAdminArea
	}
	return TargetClientArea
}

// currentCapabilities derives the capability set for this evaluation. A
// session whose token does not decode degrades to anonymous capabilities.
func (g *Guard) currentCapabilities() domain.CapabilitySet {
	if !g.session.IsAuthenticated() {
		return domain.AnonymousCapabilities()
	}
	identity, ok := g.session.CurrentIdentity()
	if !ok {
		return domain.AnonymousCapabilities()
	}
	return identity.Capabilities()
}
