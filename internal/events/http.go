// Copyright (c) 2026 EventInc. All rights reserved.

package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/eventinc/api/internal/platform/request"
	"github.com/eventinc/api/internal/platform/respond"
	"github.com/eventinc/api/pkg/pagination"
	"github.com/eventinc/api/pkg/query"
)

// # HTTP Transport

// HTTPHandler exposes the admin event catalogue endpoints.
//
// TODO: add a RequireRole(admin) guard once the admin frontend stops sharing
// these endpoints with staff accounts. Today any authenticated or anonymous
// caller reaches them, matching the frontend's current expectations.
type HTTPHandler struct {
	service *Service
}

// NewHTTPHandler creates a new events HTTP handler.
func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes returns the router for /api/admin/events.
func (handler *HTTPHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/{id}", handler.Get)
	router.Patch("/{id}/status", handler.UpdateStatus)

	return router
}

// listResponse is the GET / success payload.
type listResponse struct {
	Events     []*Event        `json:"events"`
	Pagination pagination.Meta `json:"pagination"`
}

// eventResponse wraps a single event payload.
type eventResponse struct {
	Event *Event `json:"event"`
}

// statusRequest is the PATCH /{id}/status request body.
type statusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/admin/events.
func (handler *HTTPHandler) List(writer http.ResponseWriter, request *http.Request) {
	queryValues := request.URL.Query()

	filter := Filter{
		Status: queryValues.Get(FieldStatus),
		Type:   queryValues.Get(FieldType),
		Search: queryValues.Get("search"),
		Tags:   query.StringSlice(queryValues.Get("tags")),
	}

	list, meta, err := handler.service.List(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Events: list, Pagination: meta})
}

// Get handles GET /api/admin/events/{id}.
func (handler *HTTPHandler) Get(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.Get(request.Context(), requestutil.ID(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, eventResponse{Event: event})
}

// Create handles POST /api/admin/events.
func (handler *HTTPHandler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, eventResponse{Event: event})
}

// UpdateStatus handles PATCH /api/admin/events/{id}/status.
func (handler *HTTPHandler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	var body statusRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.UpdateStatus(request.Context(), requestutil.ID(request, FieldID), body.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, eventResponse{Event: event})
}
