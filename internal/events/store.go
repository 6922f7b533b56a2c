// Copyright (c) 2026 EventInc. All rights reserved.

package events

import "context"

// EventRepository defines the data access contract for the events domain.
//
// # Architecture
//
// The interface lives in the domain package because the service layer (the
// consumer) defines what it needs. The PostgreSQL implementation lives next to
// it in store_postgres.go.
type EventRepository interface {
	// List returns a filtered, paginated slice of events and the total count.
	//
	// Returns:
	//   - []*Event: The list of events matching the filter, newest start first.
	//   - int: Total count for pagination.
	//   - error: Database or connection errors.
	List(ctx context.Context, f Filter, limit, offset int) ([]*Event, int, error)

	// FindByID returns the event with the given ID.
	//
	// It returns apperr.NotFound if the event is absent.
	FindByID(ctx context.Context, id string) (*Event, error)

	// Create persists a new event to the store.
	//
	// The caller is responsible for generating and setting the ID and Slug
	// before calling this method.
	Create(ctx context.Context, e *Event) error

	// UpdateStatus transitions an event to a new publication status.
	//
	// It returns apperr.NotFound when no row matches the ID.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
