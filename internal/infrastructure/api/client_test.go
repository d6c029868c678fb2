package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, 0, zerolog.Nop())
}

func TestRequestCarriesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		fmt.Fprint(w, `{}`)
	})
	client.BindSession(staticTokens{token: "tok123"}, nil)

	var out map[string]any
	require.NoError(t, client.get(context.Background(), "/services", &out))

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestUnboundClientSendsAnonymously(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[]`)
	})

	var out []domain.Service
	require.NoError(t, client.get(context.Background(), "/services", &out))

	assert.Empty(t, gotAuth)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusInternalServerError, domain.ErrServerFault},
		{http.StatusBadGateway, domain.ErrServerFault},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, `{"detail":"because reasons"}`)
			})

			err := client.get(context.Background(), "/x", nil)

			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "because reasons", "server detail must surface verbatim")
		})
	}
}

func TestUnauthorizedOnSessionRequestFiresInvalidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Invalid token"}`)
	})
	invalidated := 0
	client.BindSession(staticTokens{token: "stale"}, func() { invalidated++ })

	err := client.get(context.Background(), "/reservations/my-reservations", nil)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, 1, invalidated)
}

func TestAnonymousUnauthorizedMapsToBadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Invalid credentials"}`)
	})

	_, err := NewAuthGateway(client).Login(context.Background(), credentialsFixture())

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// flakyTransport fails the first n round trips with a transport error.
type flakyTransport struct {
	failures int
	attempts int
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return nil, errors.New("connection refused")
	}
	return http.DefaultTransport.RoundTrip(req)
}

func TestGetRetriesTransportFailuresWithBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second, 2, zerolog.Nop())
	transport := &flakyTransport{failures: 2}
	client.http.Transport = transport

	var out []domain.Service
	err := client.get(context.Background(), "/services", &out)

	require.NoError(t, err)
	assert.Equal(t, 3, transport.attempts)
}

func TestGetGivesUpAfterConfiguredRetries(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second, 1, zerolog.Nop())
	transport := &flakyTransport{failures: 99}
	client.http.Transport = transport

	err := client.get(context.Background(), "/services", nil)

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, 2, transport.attempts)
}

func TestMutationsAreNeverRetried(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second, 3, zerolog.Nop())
	transport := &flakyTransport{failures: 99}
	client.http.Transport = transport

	err := client.send(context.Background(), http.MethodPost, "/reservations", map[string]int{"id_service": 1}, nil)

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, 1, transport.attempts)
}

func TestHTTPErrorsAreNotRetried(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})
	client.retries = 3

	err := client.get(context.Background(), "/services", nil)

	assert.ErrorIs(t, err, domain.ErrServerFault)
	assert.Equal(t, 1, calls, "a server answer is final; only transport failures retry")
}
