package members

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/memberservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*MembersHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAddHandler(t *testing.T) {
	handler, service := NewMock(t)
	joined := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"id":"HJ001","name":"Malachi"}`,
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), "HJ001", "Malachi").Return(&domain.Member{
					ID:       "HJ001",
					Name:     "Malachi",
					JoinedAt: joined,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing name",
			body:         `{"id":"HJ001"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Member id already taken",
			body: `{"id":"HJ001","name":"Malachi"}`,
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), "HJ001", "Malachi").Return(nil, memberservice.ErrMemberExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Malformed member id",
			body: `{"id":"nope!","name":"Malachi"}`,
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), "nope!", "Malachi").Return(nil, memberservice.ErrInvalidMemberID)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"id":"HJ001","name":"Malachi"}`,
			prepareMock: func() {
				service.EXPECT().Add(gomock.Any(), "HJ001", "Malachi").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/members", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Add(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.MemberResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "HJ001", body.ID)
				assert.Equal(t, "Malachi", body.Name)
			}
		})
	}
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful rename",
			body: `{"name":"Ezekiel"}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "HJ001", "Ezekiel").Return(&domain.Member{
					ID:   "HJ001",
					Name: "Ezekiel",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Member not found",
			body: `{"name":"Ezekiel"}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "HJ001", "Ezekiel").Return(nil, memberservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing name",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPut, "/api/members/HJ001", bytes.NewBufferString(tt.body))
			r = withURLParam(r, "id", "HJ001")
			w := httptest.NewRecorder()
			handler.Update(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRemoveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful removal",
			prepareMock: func() {
				service.EXPECT().Remove(gomock.Any(), "HJ001").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Member not found",
			prepareMock: func() {
				service.EXPECT().Remove(gomock.Any(), "HJ001").Return(memberservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Member still referenced",
			prepareMock: func() {
				service.EXPECT().Remove(gomock.Any(), "HJ001").Return(memberservice.ErrMemberHasEvents)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodDelete, "/api/members/HJ001", nil)
			r = withURLParam(r, "id", "HJ001")
			w := httptest.NewRecorder()
			handler.Remove(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Members in joining order",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return([]domain.Member{
					{ID: "HJ001", Name: "Malachi"},
					{ID: "HJ002", Name: "Ezekiel"},
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/members", nil)
			w := httptest.NewRecorder()
			handler.List(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MemberResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedCount)
			}
		})
	}
}
