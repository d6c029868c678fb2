// Command bookingctl is the terminal client for the reservaplus booking
// backend: browse the service catalog, manage your reservations, and (for
// administrators) manage the catalog, the bookings and the user roster.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/reservaplus/booking-client/internal/core/ports"
	"github.com/reservaplus/booking-client/internal/core/service"
	"github.com/reservaplus/booking-client/internal/infrastructure/api"
	"github.com/reservaplus/booking-client/internal/infrastructure/config"
	"github.com/reservaplus/booking-client/internal/infrastructure/store"
	"github.com/reservaplus/booking-client/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// app bundles the wired use-case services for the command handlers.
type app struct {
	session      ports.SessionService
	guard        *service.Guard
	reservations ports.ReservationService
	catalog      ports.CatalogService
	roster       ports.RosterService
}

func run(args []string) int {
	// Local overrides for development; absence of a .env file is fine.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTP.Timeout, cfg.HTTP.Retries, log)
	tokens := store.NewFileTokenStore(cfg.Token.Path)
	session := service.NewSessionStore(tokens, api.NewAuthGateway(client), log)
	// From here on every request carries the session's token, and a 401
	// tears the session down.
	client.BindSession(session, session.Invalidate)

	session.Subscribe(func(authenticated bool) {
		log.Debug().Bool("authenticated", authenticated).Msg("session state changed")
	})

	a := &app{
		session:      session,
		guard:        service.NewGuard(session, log),
		reservations: service.NewReservationService(api.NewReservationGateway(client), session, log),
		catalog:      service.NewCatalogService(api.NewCatalogGateway(client), log),
		roster:       service.NewRosterService(api.NewRosterGateway(client), session, log),
	}

	if len(args) == 0 {
		printUsage()
		return 2
	}

	if err := dispatch(ctx, a, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, a *app, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "register":
		return a.cmdRegister(ctx, args)
	case "whoami":
		return a.cmdWhoami()
	case "services":
		return a.cmdServices(ctx)
	case "reserve":
		return a.cmdReserve(ctx, args)
	case "reservations":
		return a.cmdReservations(ctx)
	case "cancel":
		return a.cmdCancel(ctx, args)
	case "admin":
		return a.dispatchAdmin(ctx, args)
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// requireArea evaluates the guard for one navigation attempt. Evaluated on
// every command, never cached: a logout may have happened in between.
func (a *app) requireArea(target service.Target) error {
	decision := a.guard.Authorize(target)
	if decision.Allowed {
		return nil
	}
	return fmt.Errorf("not signed in for %s; go to %s first (bookingctl login)",
		target.Name, decision.RedirectTo.Name)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: bookingctl <command> [flags]

Commands:
  services                       list the service catalog (public)
  register   --email --password --first-name --last-name --phone
  login      --email --password
  logout
  whoami
  reserve    --service <id> --at <YYYY-MM-DDTHH:MM> --payment <method>
  reservations                   list your reservations
  cancel     <id>                cancel one of your reservations

Administrator commands:
  admin services  list | add | update | remove
  admin reservations  list | show | set-status | remove
  admin users  list | show | update | deactivate | activate

Environment:
  BOOKING_API_URL, BOOKING_HTTP_TIMEOUT, BOOKING_HTTP_RETRIES,
  BOOKING_TOKEN_PATH, LOG_LEVEL, LOG_PRETTY (a .env file is honoured)
`)
}
