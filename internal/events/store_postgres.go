// Copyright (c) 2026 EventInc. All rights reserved.

package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventinc/api/internal/platform/apperr"
	"github.com/eventinc/api/internal/platform/database/schema"
	"github.com/eventinc/api/internal/platform/dberr"
)

// # PostgreSQL Repository

// eventRepository implements the [EventRepository] interface using pgx.
type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository constructs a PostgreSQL backed event store.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

// eventColumns is the SELECT column list shared by List and FindByID.
func eventColumns() string {
	return strings.Join(schema.Event.Columns(), ", ")
}

/*
List returns a filtered, paginated slice of events and the total count.

Description: Uses the COUNT(*) OVER() window function to retrieve the total
record count in the same round-trip as the page itself, so the listing and its
pagination metadata can never disagree.

Parameters:
  - context: context.Context
  - filter: Filter (Status, type, free-text search, tags)
  - limit: int
  - offset: int

Returns:
  - []*Event: Slice of hydrated event entities
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *eventRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE 1=1
	`, eventColumns(), schema.Event.Table))

	// Dynamic WHERE clause construction. "all" (or empty) disables a filter.
	if filter.Status != "" && filter.Status != FilterAll {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.Event.Status, argID))
		args = append(args, filter.Status)
		argID++
	}

	if filter.Type != "" && filter.Type != FilterAll {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.Event.Type, argID))
		args = append(args, filter.Type)
		argID++
	}

	// Search matches title OR description, case-insensitively.
	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			schema.Event.Title, argID, schema.Event.Description, argID))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argID++
	}

	if len(filter.Tags) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s && $%d", schema.Event.Tags, argID))
		args = append(args, filter.Tags)
		argID++
	}

	// Upcoming events first; ID breaks ties deterministically.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC", schema.Event.StartDate, schema.Event.ID))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	var totalCount int

	for rows.Next() {
		event := &Event{}
		if err := scanEvent(rows, event, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to read event rows: %w", err)
	}

	return events, totalCount, nil
}

/*
FindByID retrieves an event record by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Event: Hydrated event entity
  - error: apperr.NotFound or database errors
*/
func (repository *eventRepository) FindByID(context context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		eventColumns(), schema.Event.Table, schema.Event.ID,
	)

	event := &Event{}
	err := scanEvent(repository.pool.QueryRow(context, query, id), event, nil)
	if err != nil {
		return nil, dberr.Wrap(err, "Event")
	}

	return event, nil
}

/*
Create persists a new event entity.

Parameters:
  - context: context.Context
  - event: *Event (ID and Slug already set by the caller)

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *eventRepository) Create(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`,
		schema.Event.Table, eventColumns(),
	)

	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		event.ID,
		event.Title,
		event.Slug,
		event.Description,
		event.Type,
		event.Status,
		event.StartDate,
		event.EndDate,
		event.Timezone,
		event.Location.Type,
		event.Location.Address,
		event.Location.City,
		event.Location.Country,
		event.Location.VirtualLink,
		event.Capacity,
		event.Pricing.Type,
		event.Pricing.Amount,
		event.Pricing.Currency,
		event.Image.URL,
		event.Image.Alt,
		event.OrganizerID,
		event.RegistrationDeadline,
		event.Tags,
		event.Meta.RegisteredCount,
		event.Meta.WaitlistCount,
		event.Meta.ViewCount,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to create event: %w", err), "Event")
	}

	return nil
}

/*
UpdateStatus transitions an event to a new publication status.

Parameters:
  - context: context.Context
  - id: string
  - status: Status (Already validated by the service layer)

Returns:
  - error: apperr.NotFound when no row matches, otherwise execution errors
*/
func (repository *eventRepository) UpdateStatus(context context.Context, id string, status Status) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		schema.Event.Table, schema.Event.Status, schema.Event.UpdatedAt, schema.Event.ID,
	)

	result, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to update event status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Event")
	}

	return nil
}

// scanEvent hydrates an Event from a row whose column order matches
// [schema.EventTable.Columns], optionally followed by a window-function total.
func scanEvent(row pgx.Row, event *Event, totalCount *int) error {
	targets := []any{
		&event.ID,
		&event.Title,
		&event.Slug,
		&event.Description,
		&event.Type,
		&event.Status,
		&event.StartDate,
		&event.EndDate,
		&event.Timezone,
		&event.Location.Type,
		&event.Location.Address,
		&event.Location.City,
		&event.Location.Country,
		&event.Location.VirtualLink,
		&event.Capacity,
		&event.Pricing.Type,
		&event.Pricing.Amount,
		&event.Pricing.Currency,
		&event.Image.URL,
		&event.Image.Alt,
		&event.OrganizerID,
		&event.RegistrationDeadline,
		&event.Tags,
		&event.Meta.RegisteredCount,
		&event.Meta.WaitlistCount,
		&event.Meta.ViewCount,
		&event.CreatedAt,
		&event.UpdatedAt,
	}
	if totalCount != nil {
		targets = append(targets, totalCount)
	}

	return row.Scan(targets...)
}

// escapeLike neutralizes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
