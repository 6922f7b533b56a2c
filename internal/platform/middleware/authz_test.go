// Copyright (c) 2026 EventInc. All rights reserved.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventinc/api/internal/platform/apperr"
	"github.com/eventinc/api/internal/platform/ctxutil"
	"github.com/eventinc/api/internal/platform/sec"
)

// stubVerifier maps fixed token strings onto canned claims or errors.
type stubVerifier struct {
	claims map[string]*sec.AuthClaims
	err    error
}

func (v *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	claims, ok := v.claims[tokenStr]
	if !ok {
		return nil, sec.ErrTokenInvalid
	}
	return claims, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{
		claims: map[string]*sec.AuthClaims{
			"good-token": {UserID: "user-1", Role: string(sec.RoleStaff)},
		},
	}

	var seen *sec.AuthClaims
	handler := Authenticate(verifier)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantClaims bool
		wantCode   string
	}{
		{
			name:       "no header passes through as anonymous",
			header:     "",
			wantStatus: http.StatusOK,
			wantClaims: false,
		},
		{
			name:       "valid bearer token injects claims",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
			wantClaims: true,
		},
		{
			name:       "malformed header is rejected",
			header:     "good-token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperr.CodeInvalidToken,
		},
		{
			name:       "unknown token is rejected",
			header:     "Bearer bad-token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperr.CodeInvalidToken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			seen = nil
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.header != "" {
				request.Header.Set("Authorization", testCase.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantStatus, recorder.Code)
			if testCase.wantClaims {
				require.NotNil(t, seen)
				assert.Equal(t, "user-1", seen.UserID)
			} else if testCase.wantStatus == http.StatusOK {
				assert.Nil(t, seen)
			}
			if testCase.wantCode != "" {
				assert.Equal(t, testCase.wantCode, decodeErrorBody(t, recorder)["code"])
			}
		})
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: sec.ErrTokenExpired}
	handler := Authenticate(verifier)(okHandler())

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer stale-token")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, apperr.CodeTokenExpired, decodeErrorBody(t, recorder)["code"])
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(okHandler())

	t.Run("anonymous request is blocked", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apperr.CodeNoToken, decodeErrorBody(t, recorder)["code"])
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleStaff)})
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(sec.RoleAdmin)(okHandler())

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
		wantCode   string
	}{
		{
			name:       "anonymous request is blocked",
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperr.CodeNoToken,
		},
		{
			name:       "insufficient role is forbidden",
			claims:     &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleStaff)},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "matching role passes",
			claims:     &sec.AuthClaims{UserID: "user-2", Role: string(sec.RoleAdmin)},
			wantStatus: http.StatusOK,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if testCase.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), testCase.claims))
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.wantStatus, recorder.Code)
			if testCase.wantCode != "" {
				assert.Equal(t, testCase.wantCode, decodeErrorBody(t, recorder)["code"])
			}
		})
	}
}
