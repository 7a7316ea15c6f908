package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler(t *testing.T, wantUser string, wantFullAccess bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(UserKey).(string)
		fullAccess, _ := r.Context().Value(FullAccessKey).(bool)
		assert.Equal(t, wantUser, user)
		assert.Equal(t, wantFullAccess, fullAccess)
		w.WriteHeader(http.StatusOK)
	})
}

func TestGateDisabled(t *testing.T) {
	gate := NewGate(false, "")

	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	rec := httptest.NewRecorder()

	gate.Authenticate(okHandler(t, "local", true)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateAuthenticate(t *testing.T) {
	jwtService := &JWTService{}
	hashService := &HashService{}
	adminHash, _ := hashService.HashPassword("hunter2")

	validToken, _ := jwtService.GenerateJWT("raven#1337", false, time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		prepare      func(r *http.Request)
		expectedCode int
		user         string
		fullAccess   bool
	}{
		{
			name:         "Missing header",
			prepare:      func(r *http.Request) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Invalid bearer token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not.a.token")
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Valid bearer token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+validToken)
			},
			expectedCode: http.StatusOK,
			user:         "raven#1337",
			fullAccess:   false,
		},
		{
			name: "Admin basic auth fallback",
			prepare: func(r *http.Request) {
				r.SetBasicAuth("admin", "hunter2")
			},
			expectedCode: http.StatusOK,
			user:         "admin",
			fullAccess:   true,
		},
		{
			name: "Wrong admin password",
			prepare: func(r *http.Request) {
				r.SetBasicAuth("admin", "wrong")
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate(true, adminHash)
			req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			gate.Authenticate(okHandler(t, tt.user, tt.fullAccess)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRequireFullAccess(t *testing.T) {
	jwtService := &JWTService{}
	gate := NewGate(true, "")

	readOnlyToken, _ := jwtService.GenerateJWT("guest#0001", false, time.Now().Add(time.Hour))
	fullToken, _ := jwtService.GenerateJWT("raven#1337", true, time.Now().Add(time.Hour))

	handler := gate.Authenticate(gate.RequireFullAccess(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer "+readOnlyToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer "+fullToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
