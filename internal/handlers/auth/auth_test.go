package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCreateSessionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.SessionResponseDTO
	}{
		{
			name: "Session issued",
			body: `{"token":"discord-token"}`,
			prepareMock: func() {
				service.EXPECT().Exchange(gomock.Any(), "discord-token").Return(&authservice.Session{
					Token:      "session-jwt",
					User:       "raven#1337",
					FullAccess: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.SessionResponseDTO{
				SessionToken: "session-jwt",
				User:         "raven#1337",
				FullAccess:   true,
			},
		},
		{
			name:         "Invalid request body",
			body:         `{invalid}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing token",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Auth gate disabled",
			body: `{"token":"discord-token"}`,
			prepareMock: func() {
				service.EXPECT().Exchange(gomock.Any(), "discord-token").Return(nil, authservice.ErrAuthDisabled)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Token rejected",
			body: `{"token":"discord-token"}`,
			prepareMock: func() {
				service.EXPECT().Exchange(gomock.Any(), "discord-token").Return(nil, authservice.ErrNotAuthenticated)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Verification service unreachable",
			body: `{"token":"discord-token"}`,
			prepareMock: func() {
				service.EXPECT().Exchange(gomock.Any(), "discord-token").Return(nil, authservice.ErrAuthUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Internal server error",
			body: `{"token":"discord-token"}`,
			prepareMock: func() {
				service.EXPECT().Exchange(gomock.Any(), "discord-token").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/auth/session", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateSession(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
