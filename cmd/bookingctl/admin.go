package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/reservaplus/booking-client/internal/core/domain"
	"github.com/reservaplus/booking-client/internal/core/ports"
	"github.com/reservaplus/booking-client/internal/core/service"
)

func (a *app) dispatchAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bookingctl admin <services|reservations|users> ...")
	}
	switch args[0] {
	case "services":
		return a.adminServices(ctx, args[1:])
	case "reservations":
		return a.adminReservations(ctx, args[1:])
	case "users":
		return a.adminUsers(ctx, args[1:])
	default:
		return fmt.Errorf("unknown admin area %q", args[0])
	}
}

func (a *app) adminServices(ctx context.Context, args []string) error {
	if err := a.requireArea(service.TargetAdminCatalog); err != nil {
		return err
	}
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return a.cmdServices(ctx)
	case "add":
		input, err := parseServiceFlags("admin services add", rest)
		if err != nil {
			return err
		}
		if err := a.catalog.Create(ctx, input); err != nil {
			return err
		}
		fmt.Printf("service %q created\n", input.Name)
		return nil
	case "update":
		if len(rest) < 1 {
			return fmt.Errorf("usage: bookingctl admin services update <id> [flags]")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		input, err := parseServiceFlags("admin services update", rest[1:])
		if err != nil {
			return err
		}
		if err := a.catalog.Update(ctx, id, input); err != nil {
			return err
		}
		fmt.Printf("service %d updated\n", id)
		return nil
	case "remove":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookingctl admin services remove <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if err := a.catalog.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("service %d removed\n", id)
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) adminReservations(ctx context.Context, args []string) error {
	if err := a.requireArea(service.TargetAdminReservations); err != nil {
		return err
	}
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		reservations, err := a.reservations.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, r := range reservations {
			fmt.Printf("%4d  user %-4d %-25s %s  %s\n",
				r.ID, r.UserID, r.ServiceName, r.ScheduledAt.Format(scheduleLayout), r.Status())
		}
		return nil
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookingctl admin reservations show <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		r, err := a.reservations.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("reservation %d\n  owner:     %s %s <%s>\n  service:   %s\n  scheduled: %s\n  status:    %s\n  price:     %.2f (%s)\n",
			r.ID, r.OwnerFirstName, r.OwnerLastName, r.OwnerEmail, r.ServiceName,
			r.ScheduledAt.Format(scheduleLayout), r.Status(), r.TotalPrice, r.PaymentMethod)
		return nil
	case "set-status":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bookingctl admin reservations set-status <id> <pending|confirmed|cancelled|completed>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		status, err := parseStatus(rest[1])
		if err != nil {
			return err
		}
		if err := a.reservations.SetStatus(ctx, id, status); err != nil {
			return err
		}
		fmt.Printf("reservation %d -> %s\n", id, status)
		return nil
	case "remove":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookingctl admin reservations remove <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if err := a.reservations.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("reservation %d removed\n", id)
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func (a *app) adminUsers(ctx context.Context, args []string) error {
	if err := a.requireArea(service.TargetAdminRoster); err != nil {
		return err
	}
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		users, err := a.roster.List(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			state := "active"
			if !u.Active {
				state = "inactive"
			}
			fmt.Printf("%4d  %-30s %-8s %s\n", u.ID, u.Email, u.RoleID, state)
		}
		return nil
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookingctl admin users show <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		u, err := a.roster.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("user %d\n  name:  %s %s\n  email: %s\n  phone: %s\n  role:  %s\n  active: %t\n",
			u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.RoleID, u.Active)
		return nil
	case "update":
		if len(rest) < 1 {
			return fmt.Errorf("usage: bookingctl admin users update <id> [flags]")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		input, err := parseUserUpdateFlags(rest[1:])
		if err != nil {
			return err
		}
		u, err := a.roster.Update(ctx, id, input)
		if err != nil {
			return err
		}
		fmt.Printf("user %d updated (%s)\n", u.ID, u.Email)
		return nil
	case "deactivate":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookingctl admin users deactivate <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if err := a.roster.Deactivate(ctx, id); err != nil {
			return err
		}
		fmt.Printf("user %d deactivated\n", id)
		return nil
	case "activate":
		if len(rest) != 1 {
			return fmt.Errorf("usage: bookingctl admin users activate <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if err := a.roster.Activate(ctx, id); err != nil {
			return err
		}
		fmt.Printf("user %d activated\n", id)
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", sub)
	}
}

func subcommand(args []string, fallback string) (string, []string) {
	if len(args) == 0 {
		return fallback, nil
	}
	return args[0], args[1:]
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be a number: %w", err)
	}
	return id, nil
}

func parseStatus(raw string) (domain.ReservationStatus, error) {
	switch raw {
	case "pending":
		return domain.StatusPending, nil
	case "confirmed":
		return domain.StatusConfirmed, nil
	case "cancelled":
		return domain.StatusCancelled, nil
	case "completed":
		return domain.StatusCompleted, nil
	}
	return 0, fmt.Errorf("unknown status %q", raw)
}

func parseServiceFlags(name string, args []string) (ports.ServiceInput, error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	input := ports.ServiceInput{}
	flags.StringVar(&input.Name, "name", "", "service name")
	flags.StringVar(&input.Description, "description", "", "service description")
	flags.IntVar(&input.DurationMinutes, "duration", 0, "duration in minutes")
	flags.Float64Var(&input.Price, "price", 0, "price")
	flags.BoolVar(&input.Active, "active", true, "whether the service is offered")
	if err := flags.Parse(args); err != nil {
		return ports.ServiceInput{}, err
	}
	return input, nil
}

func parseUserUpdateFlags(args []string) (ports.UserUpdateInput, error) {
	flags := pflag.NewFlagSet("admin users update", pflag.ContinueOnError)
	email := flags.String("email", "", "new email")
	firstName := flags.String("first-name", "", "new first name")
	lastName := flags.String("last-name", "", "new last name")
	phone := flags.String("phone", "", "new phone number")
	role := flags.Int("role", 0, "new role id (1 admin, 2 client)")
	if err := flags.Parse(args); err != nil {
		return ports.UserUpdateInput{}, err
	}

	input := ports.UserUpdateInput{}
	if flags.Changed("email") {
		input.Email = email
	}
	if flags.Changed("first-name") {
		input.FirstName = firstName
	}
	if flags.Changed("last-name") {
		input.LastName = lastName
	}
	if flags.Changed("phone") {
		input.Phone = phone
	}
	if flags.Changed("role") {
		input.RoleID = role
	}
	return input, nil
}
