// Copyright (c) 2026 EventInc. All rights reserved.

// Command eventctl is an operator CLI for the EventInc API.
//
// It drives the same client SDK the admin tooling uses: credentials are
// exchanged for a stored session token, admin operations run behind the route
// guard, and diagnostics are retained in a bounded local log buffer.
//
// Usage:
//
//	eventctl login -email ana@eventinc.com -password secret
//	eventctl verify
//	eventctl logout
//	eventctl events [-status published] [-type conference] [-search go] [-page 1] [-limit 10]
//	eventctl publish -id <event-id> [-status published]
//	eventctl logs [-clear]
//
// The API base URL comes from EVENTINC_API_URL (default http://localhost:8080).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/eventinc/api/internal/client"
	"github.com/eventinc/api/internal/events"
	"github.com/eventinc/api/pkg/logring"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "eventctl:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "login":
		err = app.login(ctx, args)
	case "verify":
		err = app.verify(ctx)
	case "logout":
		err = app.logout()
	case "events":
		err = app.listEvents(ctx, args)
	case "publish":
		err = app.updateStatus(ctx, args)
	case "logs":
		err = app.logs(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "eventctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: eventctl <login|verify|logout|events|publish|logs> [flags]")
}

// app bundles the SDK pieces every subcommand needs.
type app struct {
	api     *client.Client
	session *client.Session
	guard   *client.Guard
	ring    *logring.Handler
	logger  *slog.Logger
}

// newApp wires the client SDK: API client, file token store, session, guard,
// and a persisted bounded log buffer under the user config dir.
func newApp() (*app, error) {
	baseURL := os.Getenv("EVENTINC_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	tokenPath, err := client.DefaultTokenPath()
	if err != nil {
		return nil, err
	}

	ring := logring.NewHandler(logring.Options{
		Enabled:  true,
		MinLevel: slog.LevelInfo,
		Persist:  true,
		Store:    logring.NewFileStore(filepath.Join(filepath.Dir(tokenPath), "logs.json")),
	})
	logger := slog.New(ring)

	apiClient := client.New(baseURL)
	session := client.NewSession(apiClient, client.NewFileTokenStore(tokenPath), logger)

	return &app{
		api:     apiClient,
		session: session,
		guard:   client.NewGuard(session, logger),
		ring:    ring,
		logger:  logger,
	}, nil
}

// login handles `eventctl login`.
func (a *app) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password (prompted when omitted)")
	flags.Parse(args)

	if *email == "" {
		return fmt.Errorf("login: -email is required")
	}

	if *password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("login: failed to read password: %w", err)
		}
		*password = string(raw)
	}

	if err := a.session.Login(ctx, *email, *password); err != nil {
		return err
	}

	user := a.session.User()
	fmt.Printf("Logged in as %s (%s)\n", user.FullName(), user.Role)
	return nil
}

// verify handles `eventctl verify`.
func (a *app) verify(ctx context.Context) error {
	if err := a.session.VerifyAuth(ctx); err != nil {
		return err
	}

	user := a.session.User()
	fmt.Printf("Session valid: %s (%s)\n", user.Email, user.Role)
	return nil
}

// logout handles `eventctl logout`.
func (a *app) logout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// listEvents handles `eventctl events`. The navigation runs behind the same
// route guard the admin frontend uses.
func (a *app) listEvents(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("events", flag.ExitOnError)
	status := flags.String("status", "all", "filter by status (draft|published|cancelled|all)")
	eventType := flags.String("type", "all", "filter by type")
	search := flags.String("search", "", "free-text search against title and description")
	page := flags.Int("page", 1, "page number")
	limit := flags.Int("limit", 10, "page size")
	flags.Parse(args)

	decision := a.guard.Evaluate(ctx, "/admin/events")
	if !decision.Allowed {
		return fmt.Errorf("not authenticated, run `eventctl login` (redirect: %s)", decision.RedirectTo)
	}

	filter := events.Filter{Status: *status, Type: *eventType, Search: *search}
	result, err := a.api.ListEvents(ctx, a.session.Token(), filter, *page, *limit)
	if err != nil {
		return err
	}

	for _, event := range result.Events {
		fmt.Printf("%-36s  %-10s  %-11s  %s  %s\n",
			event.ID, event.Status, event.Type,
			event.StartDate.Format("2006-01-02"), event.Title)
	}
	fmt.Printf("page %d/%d (%d events)\n",
		result.Pagination.Page, result.Pagination.Pages, result.Pagination.Total)
	return nil
}

// updateStatus handles `eventctl publish`.
func (a *app) updateStatus(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("publish", flag.ExitOnError)
	id := flags.String("id", "", "event id")
	status := flags.String("status", "published", "target status (draft|published|cancelled)")
	flags.Parse(args)

	if *id == "" {
		return fmt.Errorf("publish: -id is required")
	}

	decision := a.guard.Evaluate(ctx, "/admin/events")
	if !decision.Allowed {
		return fmt.Errorf("not authenticated, run `eventctl login` (redirect: %s)", decision.RedirectTo)
	}

	event, err := a.api.UpdateEventStatus(ctx, a.session.Token(), *id, *status)
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", event.Title, event.Status)
	return nil
}

// logs handles `eventctl logs`, dumping or clearing the local log buffer.
func (a *app) logs(args []string) error {
	flags := flag.NewFlagSet("logs", flag.ExitOnError)
	clear := flags.Bool("clear", false, "clear the retained log buffer")
	flags.Parse(args)

	if *clear {
		a.ring.Clear()
		fmt.Println("Log buffer cleared.")
		return nil
	}

	for _, entry := range a.ring.Entries() {
		fmt.Printf("%s  %-5s  %s", entry.Timestamp, entry.Level, entry.Message)
		if len(entry.Data) > 0 {
			fmt.Printf("  %v", entry.Data)
		}
		fmt.Println()
	}
	fmt.Printf("%d entries retained\n", a.ring.Len())
	return nil
}
