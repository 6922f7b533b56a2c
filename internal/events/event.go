// Copyright (c) 2026 EventInc. All rights reserved.

/*
Package events implements the event catalogue of the EventInc back office.

It covers the full lifecycle of an event record: creation with derived slugs,
filtered and paginated listing for the admin dashboard, and status transitions
(draft, published, cancelled).
*/
package events

import "time"

// # Enumerations

// Status represents the publication state of an event.
type Status string

// Event statuses.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled:
		return true
	}
	return false
}

// Statuses returns all valid status values as strings.
func Statuses() []string {
	return []string{string(StatusDraft), string(StatusPublished), string(StatusCancelled)}
}

// Type represents the category of an event.
type Type string

// Event types.
const (
	TypeConference Type = "conference"
	TypeWorkshop   Type = "workshop"
	TypeWebinar    Type = "webinar"
	TypeNetworking Type = "networking"
	TypeOther      Type = "other"
)

// IsValid reports whether the type is a known value.
func (t Type) IsValid() bool {
	switch t {
	case TypeConference, TypeWorkshop, TypeWebinar, TypeNetworking, TypeOther:
		return true
	}
	return false
}

// Types returns all valid type values as strings.
func Types() []string {
	return []string{
		string(TypeConference), string(TypeWorkshop), string(TypeWebinar),
		string(TypeNetworking), string(TypeOther),
	}
}

// LocationType distinguishes where an event takes place.
type LocationType string

// Location types.
const (
	LocationVirtual  LocationType = "virtual"
	LocationPhysical LocationType = "physical"
	LocationHybrid   LocationType = "hybrid"
)

// PricingType distinguishes free from paid events.
type PricingType string

// Pricing types.
const (
	PricingFree PricingType = "free"
	PricingPaid PricingType = "paid"
)

// # Domain Entities

// Location describes where an event is held.
type Location struct {
	Type        LocationType `json:"type"`
	Address     string       `json:"address,omitempty"`
	City        string       `json:"city,omitempty"`
	Country     string       `json:"country,omitempty"`
	VirtualLink string       `json:"virtualLink,omitempty"`
}

// Pricing describes the admission model of an event.
type Pricing struct {
	Type     PricingType `json:"type"`
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
}

// Image is the promotional artwork attached to an event.
type Image struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Meta carries derived counters maintained by the platform, not by editors.
type Meta struct {
	RegisteredCount int `json:"registeredCount"`
	WaitlistCount   int `json:"waitlistCount"`
	ViewCount       int `json:"viewCount"`
}

// Event is the aggregate root of the catalogue.
//
// The Slug is derived from the Title at creation time and is stable afterwards
// so published URLs keep working when a title is edited.
type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Description          string     `json:"description,omitempty"`
	Type                 Type       `json:"type"`
	Status               Status     `json:"status"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              time.Time  `json:"endDate"`
	Timezone             string     `json:"timezone"`
	Location             Location   `json:"location"`
	Capacity             int        `json:"capacity"`
	Pricing              Pricing    `json:"pricing"`
	Image                Image      `json:"image"`
	OrganizerID          string     `json:"organizerId,omitempty"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	Tags                 []string   `json:"tags"`
	Meta                 Meta       `json:"meta"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// # Filtering

// FilterAll is the sentinel that disables a status or type filter.
const FilterAll = "all"

// Filter captures the admin listing query.
//
// Status and Type are ignored when empty or [FilterAll]. Search matches
// case-insensitively against title or description.
type Filter struct {
	Status string
	Type   string
	Search string
	Tags   []string
}

// # Field Identifiers

// Global field names for validation in the events domain.
const (
	FieldTitle     = "title"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldStatus    = "status"
	FieldType      = "type"
	FieldCapacity  = "capacity"
	FieldID        = "id"
)
