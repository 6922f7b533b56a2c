// Copyright (c) 2026 EventInc. All rights reserved.

package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/eventinc/api/internal/platform/validate"
	"github.com/eventinc/api/pkg/pagination"
	"github.com/eventinc/api/pkg/slug"
	"github.com/eventinc/api/pkg/uuidv7"
)

// Field defaults applied when an editor leaves them blank.
const (
	DefaultTimezone = "UTC"
	DefaultCurrency = "USD"
)

// # Application Service

// Service implements the event catalogue use cases.
type Service struct {
	repository EventRepository
	logger     *slog.Logger
}

// NewService creates a new events Service.
func NewService(repository EventRepository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

/*
List returns the filtered, paginated event catalogue.

Description: Filters are conjunctive. A status or type of "all" (or blank)
disables that filter; search matches title or description case-insensitively.

Parameters:
  - context: context.Context
  - filter: Filter
  - params: pagination.Params (Already clamped by the transport layer)

Returns:
  - []*Event: The page of events, newest start first. Never nil.
  - pagination.Meta: Total, page, limit, and page count
  - error: Storage failures
*/
func (service *Service) List(context context.Context, filter Filter, params pagination.Params) ([]*Event, pagination.Meta, error) {
	list, total, err := service.repository.List(context, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	// Encode as [] rather than null on empty pages.
	if list == nil {
		list = []*Event{}
	}

	return list, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns the event with the given ID.
func (service *Service) Get(context context.Context, id string) (*Event, error) {
	return service.repository.FindByID(context, id)
}

// CreateInput carries the editor-supplied fields for a new event.
type CreateInput struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 string     `json:"type"`
	Status               string     `json:"status"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              time.Time  `json:"endDate"`
	Timezone             string     `json:"timezone"`
	Location             Location   `json:"location"`
	Capacity             int        `json:"capacity"`
	Pricing              Pricing    `json:"pricing"`
	Image                Image      `json:"image"`
	OrganizerID          string     `json:"organizerId"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	Tags                 []string   `json:"tags"`
}

/*
Create validates editor input and persists a new event.

Description: Title, start date, and end date are required; nothing is written
when validation fails. Omitted enum fields fall back to their defaults (type
"other", status "draft", timezone UTC, free pricing in USD). The slug is
derived from the title once, at creation.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Event: The persisted event with generated ID and slug
  - error: apperr.ValidationError or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Event, error) {
	applyDefaults(&input)

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		OneOf(FieldType, input.Type, Types()...).
		OneOf(FieldStatus, input.Status, Statuses()...).
		Custom(FieldStartDate, input.StartDate.IsZero(), "This field is required").
		Custom(FieldEndDate, input.EndDate.IsZero(), "This field is required").
		Custom(FieldCapacity, input.Capacity < 0, "Must not be negative")
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() {
		validator.Custom(FieldEndDate, input.EndDate.Before(input.StartDate), "Must not be before the start date")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	event := &Event{
		ID:                   uuidv7.Must(),
		Title:                input.Title,
		Slug:                 slug.From(input.Title),
		Description:          input.Description,
		Type:                 Type(input.Type),
		Status:               Status(input.Status),
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		Timezone:             input.Timezone,
		Location:             input.Location,
		Capacity:             input.Capacity,
		Pricing:              input.Pricing,
		Image:                input.Image,
		OrganizerID:          input.OrganizerID,
		RegistrationDeadline: input.RegistrationDeadline,
		Tags:                 tags,
	}

	if err := service.repository.Create(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("event_created",
		slog.String("event_id", event.ID),
		slog.String("slug", event.Slug),
		slog.String("status", string(event.Status)),
	)

	return event, nil
}

/*
UpdateStatus transitions an event to a new publication status.

Parameters:
  - context: context.Context
  - id: string
  - status: string (Raw value from the request body)

Returns:
  - *Event: The event after the transition
  - error: apperr.ValidationError for a missing/unknown status,
    apperr.NotFound for an unknown ID
*/
func (service *Service) UpdateStatus(context context.Context, id, status string) (*Event, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldStatus, status).
		OneOf(FieldStatus, status, Statuses()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.UpdateStatus(context, id, Status(status)); err != nil {
		return nil, err
	}

	service.logger.Info("event_status_changed",
		slog.String("event_id", id),
		slog.String("status", status),
	)

	return service.repository.FindByID(context, id)
}

// applyDefaults fills blank enum fields so validation sees complete input.
func applyDefaults(input *CreateInput) {
	if input.Type == "" {
		input.Type = string(TypeOther)
	}
	if input.Status == "" {
		input.Status = string(StatusDraft)
	}
	if input.Timezone == "" {
		input.Timezone = DefaultTimezone
	}
	if input.Location.Type == "" {
		input.Location.Type = LocationPhysical
	}
	if input.Pricing.Type == "" {
		input.Pricing.Type = PricingFree
	}
	if input.Pricing.Currency == "" {
		input.Pricing.Currency = DefaultCurrency
	}
}
