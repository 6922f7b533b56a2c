// Copyright (c) 2026 EventInc. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventinc/api/internal/platform/apperr"
	requestutil "github.com/eventinc/api/internal/platform/request"
	"github.com/eventinc/api/internal/platform/respond"
	"github.com/eventinc/api/internal/platform/validate"
)

// # HTTP Transport

// HTTPHandler exposes the authentication endpoints.
type HTTPHandler struct {
	service *Service
}

// NewHTTPHandler creates a new authentication HTTP handler.
func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Routes returns the router for /api/auth.
func (handler *HTTPHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.Login)
	router.Get("/verify", handler.Verify)

	return router
}

// loginRequest is the POST /login request body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the POST /login success payload.
type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// verifyResponse is the GET /verify success payload.
type verifyResponse struct {
	User *User `json:"user"`
}

// Login handles POST /api/auth/login.
func (handler *HTTPHandler) Login(writer http.ResponseWriter, request *http.Request) {
	var body loginRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, body.Email).
		Required(FieldPassword, body.Password)
	if !validator.HasErrors() {
		validator.Email(FieldEmail, body.Email)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, user, err := handler.service.Login(request.Context(), body.Email, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{Token: token, User: user})
}

// Verify handles GET /api/auth/verify.
//
// The Authenticate middleware has already validated any bearer token and
// rejected broken ones; what remains here is the no-token case and the
// account re-check.
func (handler *HTTPHandler) Verify(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)
	if claims == nil {
		respond.Error(writer, request, apperr.AuthFailure(apperr.CodeNoToken, "No token provided"))
		return
	}

	user, err := handler.service.Verify(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, verifyResponse{User: user})
}
