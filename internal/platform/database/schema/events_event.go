// Copyright (c) 2026 EventInc. All rights reserved.

package schema

// EventTable represents the 'events.event' table
type EventTable struct {
	Table                string
	ID                   string
	Title                string
	Slug                 string
	Description          string
	Type                 string
	Status               string
	StartDate            string
	EndDate              string
	Timezone             string
	LocationType         string
	LocationAddress      string
	LocationCity         string
	LocationCountry      string
	LocationVirtualLink  string
	Capacity             string
	PricingType          string
	PricingAmount        string
	PricingCurrency      string
	ImageURL             string
	ImageAlt             string
	OrganizerID          string
	RegistrationDeadline string
	Tags                 string
	RegisteredCount      string
	WaitlistCount        string
	ViewCount            string
	CreatedAt            string
	UpdatedAt            string
}

// Event is the schema definition for events.event
var Event = EventTable{
	Table:                "events.event",
	ID:                   "id",
	Title:                "title",
	Slug:                 "slug",
	Description:          "description",
	Type:                 "type",
	Status:               "status",
	StartDate:            "startdate",
	EndDate:              "enddate",
	Timezone:             "timezone",
	LocationType:         "locationtype",
	LocationAddress:      "locationaddress",
	LocationCity:         "locationcity",
	LocationCountry:      "locationcountry",
	LocationVirtualLink:  "locationvirtuallink",
	Capacity:             "capacity",
	PricingType:          "pricingtype",
	PricingAmount:        "pricingamount",
	PricingCurrency:      "pricingcurrency",
	ImageURL:             "imageurl",
	ImageAlt:             "imagealt",
	OrganizerID:          "organizerid",
	RegistrationDeadline: "registrationdeadline",
	Tags:                 "tags",
	RegisteredCount:      "registeredcount",
	WaitlistCount:        "waitlistcount",
	ViewCount:            "viewcount",
	CreatedAt:            "createdat",
	UpdatedAt:            "updatedat",
}

// Columns returns all standard column names
func (t EventTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Type, t.Status,
		t.StartDate, t.EndDate, t.Timezone,
		t.LocationType, t.LocationAddress, t.LocationCity, t.LocationCountry, t.LocationVirtualLink,
		t.Capacity, t.PricingType, t.PricingAmount, t.PricingCurrency,
		t.ImageURL, t.ImageAlt, t.OrganizerID, t.RegistrationDeadline, t.Tags,
		t.RegisteredCount, t.WaitlistCount, t.ViewCount,
		t.CreatedAt, t.UpdatedAt,
	}
}
