package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// fakeSession is a controllable ports.Session.
type fakeSession struct {
	token    string
	identity domain.Identity
	decodes  bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.token != "" }

func (f *fakeSession) CurrentIdentity() (domain.Identity, bool) {
	if f.token == "" || !f.decodes {
		return domain.Identity{}, false
	}
	return f.identity, true
}

func (f *fakeSession) Token() string { return f.token }

func anonymousSession() *fakeSession {
	return &fakeSession{}
}

func clientSession() *fakeSession {
	return &fakeSession{token: "tok", decodes: true, identity: domain.Identity{Email: "c@x.com", Role: domain.RoleClient}}
}

func adminSession() *fakeSession {
	return &fakeSession{token: "tok", decodes: true, identity: domain.Identity{Email: "a@x.com", Role: domain.RoleAdmin}}
}

func TestGuardAllowsPublicTargetsForEveryone(t *testing.T) {
	for _, sess := range []*fakeSession{anonymousSession(), clientSession(), adminSession()} {
		guard := NewGuard(sess, zerolog.Nop())
		assert.True(t, guard.Authorize(TargetHome).Allowed)
		assert.True(t, guard.Authorize(TargetLogin).Allowed)
	}
}

func TestGuardDeniesProtectedTargetsWhenAnonymous(t *testing.T) {
	guard := NewGuard(anonymousSession(), zerolog.Nop())

	for _, target := range []Target{TargetClientArea, TargetAdminArea, TargetAdminCatalog, TargetAdminRoster, TargetAdminReservations} {
		decision := guard.Authorize(target)
		assert.False(t, decision.Allowed, "target %s", target.Name)
		assert.Equal(t, TargetLogin, decision.RedirectTo)
	}
}

func TestGuardSeparatesClientAndAdminAreas(t *testing.T) {
	guard := NewGuard(clientSession(), zerolog.Nop())

	assert.True(t, guard.Authorize(TargetClientArea).Allowed)
	assert.False(t, guard.Authorize(TargetAdminArea).Allowed)
	assert.False(t, guard.Authorize(TargetAdminRoster).Allowed)
}

func TestGuardAdmitsAdminEverywhere(t *testing.T) {
	guard := NewGuard(adminSession(), zerolog.Nop())

	for _, target := range []Target{TargetClientArea, TargetAdminArea, TargetAdminCatalog, TargetAdminRoster, TargetAdminReservations} {
		assert.True(t, guard.Authorize(target).Allowed, "target %s", target.Name)
	}
}

func TestGuardReevaluatesOnEveryAttempt(t *testing.T) {
	sess := clientSession()
	guard := NewGuard(sess, zerolog.Nop())

	assert.True(t, guard.Authorize(TargetClientArea).Allowed)

	// Logout between two attempts must flip the decision.
	sess.token = ""
	assert.False(t, guard.Authorize(TargetClientArea).Allowed)
}

func TestGuardDegradesUndecodableTokenToAnonymous(t *testing.T) {
	sess := &fakeSession{token: "garbage", decodes: false}
	guard := NewGuard(sess, zerolog.Nop())

	assert.False(t, guard.Authorize(TargetClientArea).Allowed)
	assert.True(t, guard.Authorize(TargetHome).Allowed)
}

func TestLandingTargetRoutesByRole(t *testing.T) {
	assert.Equal(t, TargetAdminArea, NewGuard(adminSession(), zerolog.Nop()).LandingTarget())
	assert.Equal(t, TargetClientArea, NewGuard(clientSession(), zerolog.Nop()).LandingTarget())
	assert.Equal(t, TargetHome, NewGuard(anonymousSession(), zerolog.Nop()).LandingTarget())
}

func TestPostLoginRoutingScenario(t *testing.T) {
	cases := []struct {
		name string
		role int
		want Target
	}{
		{"role 1 lands in the admin area", 1, TargetAdminArea},
		{"role 2 lands in the client area", 2, TargetClientArea},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := testToken(t, jwt.MapClaims{"sub": "a@b.com", "role": tc.role})
			store := NewSessionStore(&stubTokenStore{}, &stubAuthGateway{token: tok}, zerolog.Nop())
			guard := NewGuard(store, zerolog.Nop())

			require.NoError(t, store.Login(context.Background(), validCreds()))

			assert.Equal(t, tc.want, guard.LandingTarget())
		})
	}
}
