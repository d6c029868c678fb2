package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/reservaplus/booking-client/internal/core/ports"
	"github.com/reservaplus/booking-client/internal/core/service"
)

// scheduleLayout is what the reserve flag accepts: local wall-clock minutes.
const scheduleLayout = "2006-01-02T15:04"

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	creds := ports.Credentials{Email: *email, Password: *password}
	if err := a.session.Login(ctx, creds); err != nil {
		return err
	}

	landing := a.guard.LandingTarget()
	if identity, ok := a.session.CurrentIdentity(); ok {
		fmt.Printf("signed in as %s (%s)\n", identity.Email, identity.Role)
	} else {
		fmt.Println("signed in")
	}
	fmt.Printf("-> %s\n", landing.Name)
	return nil
}

func (a *app) cmdLogout() error {
	a.session.Logout()
	fmt.Println("signed out")
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
	input := ports.RegisterInput{}
	flags.StringVar(&input.Email, "email", "", "account email")
	flags.StringVar(&input.Password, "password", "", "account password")
	flags.StringVar(&input.FirstName, "first-name", "", "first name")
	flags.StringVar(&input.LastName, "last-name", "", "last name")
	flags.StringVar(&input.Phone, "phone", "", "phone number")
	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := a.session.Register(ctx, input)
	if err != nil {
		return err
	}
	fmt.Printf("account created for %s (id %d); sign in with bookingctl login\n", user.Email, user.ID)
	return nil
}

func (a *app) cmdWhoami() error {
	if !a.session.IsAuthenticated() {
		fmt.Println("not signed in")
		return nil
	}
	identity, ok := a.session.CurrentIdentity()
	if !ok {
		fmt.Println("signed in, but the stored token does not decode")
		return nil
	}
	fmt.Printf("%s %s <%s> role=%s\n", identity.FirstName, identity.LastName, identity.Email, identity.Role)
	return nil
}

func (a *app) cmdServices(ctx context.Context) error {
	services, err := a.catalog.List(ctx)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		fmt.Println("no services available")
		return nil
	}
	for _, s := range services {
		state := ""
		if !s.Active {
			state = " (inactive)"
		}
		fmt.Printf("%4d  %-30s %3d min  %8.2f%s\n", s.ID, s.Name, s.DurationMinutes, s.Price, state)
	}
	return nil
}

func (a *app) cmdReserve(ctx context.Context, args []string) error {
	if err := a.requireArea(service.TargetClientArea); err != nil {
		return err
	}

	flags := pflag.NewFlagSet("reserve", pflag.ContinueOnError)
	serviceID := flags.Int64("service", 0, "service id to book")
	at := flags.String("at", "", "scheduled datetime (YYYY-MM-DDTHH:MM, at least one day ahead)")
	payment := flags.String("payment", "", "payment method")
	if err := flags.Parse(args); err != nil {
		return err
	}

	scheduled, err := time.ParseInLocation(scheduleLayout, *at, time.Local)
	if err != nil {
		return fmt.Errorf("--at must look like %s: %w", scheduleLayout, err)
	}

	created, err := a.reservations.Create(ctx, ports.CreateReservationInput{
		ServiceID:     *serviceID,
		ScheduledAt:   scheduled,
		PaymentMethod: *payment,
	})
	if err != nil {
		return err
	}
	fmt.Printf("reservation %d created (%s)\n", created.ID, created.Status())
	return nil
}

func (a *app) cmdReservations(ctx context.Context) error {
	if err := a.requireArea(service.TargetClientArea); err != nil {
		return err
	}

	reservations, err := a.reservations.ListMine(ctx)
	if err != nil {
		return err
	}
	if len(reservations) == 0 {
		fmt.Println("no reservations yet")
		return nil
	}
	for _, r := range reservations {
		cancellable := ""
		if r.CanCancel() {
			cancellable = "  [can cancel]"
		}
		fmt.Printf("%4d  %-25s %s  %-10s%s\n",
			r.ID, r.ServiceName, r.ScheduledAt.Format(scheduleLayout), r.Status(), cancellable)
	}
	sum := a.reservations.Summary()
	fmt.Printf("total %d: %d pending, %d confirmed, %d cancelled, %d completed\n",
		sum.Total, sum.Pending, sum.Confirmed, sum.Cancelled, sum.Completed)
	return nil
}

func (a *app) cmdCancel(ctx context.Context, args []string) error {
	if err := a.requireArea(service.TargetClientArea); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: bookingctl cancel <reservation-id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("reservation id must be a number: %w", err)
	}

	if err := a.reservations.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Printf("reservation %d cancelled\n", id)
	return nil
}
