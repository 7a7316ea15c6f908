package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/payoutservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PayoutsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withMemberID(r *http.Request, memberID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("memberId", memberID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListPendingHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Pending payouts",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return([]domain.Payout{
					{MemberID: "HJ001", MemberName: "Malachi", Total: 185000},
					{MemberID: "HJ002", MemberName: "Ezekiel", Total: 60000},
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/payouts", nil)
			w := httptest.NewRecorder()
			handler.ListPending(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PayoutResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedCount)
			}
		})
	}
}

func TestGetPendingHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetPending(gomock.Any(), "HJ001").Return(&domain.Payout{
		MemberID:   "HJ001",
		MemberName: "Malachi",
		Total:      185000,
		Counters:   map[string]int64{"bizwar_win": 3, "cayo": 1},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/payouts/HJ001", nil)
	r = withMemberID(r, "HJ001")
	w := httptest.NewRecorder()
	handler.GetPending(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.PayoutResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, int64(185000), body.Total)
	assert.Equal(t, int64(3), body.Counters["bizwar_win"])
}

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)
	completedID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Payout settled",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), "HJ001").Return(&domain.CompletedPayout{
					ID:         completedID,
					MemberID:   "HJ001",
					MemberName: "Malachi",
					Total:      185000,
					Counters:   map[string]int64{"cayo": 1},
					PaidAt:     time.Now(),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing pending",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), "HJ001").Return(nil, payoutservice.ErrNoPendingPayout)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), "HJ001").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/payouts/HJ001/complete", nil)
			r = withMemberID(r, "HJ001")
			w := httptest.NewRecorder()
			handler.Complete(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CompletedPayoutResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, completedID.String(), body.ID)
				assert.Equal(t, int64(185000), body.Total)
			}
		})
	}
}

func TestCompleteAllHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Everything settled",
			prepareMock: func() {
				service.EXPECT().CompleteAll(gomock.Any()).Return(4, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 4,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().CompleteAll(gomock.Any()).Return(0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/payouts/complete", nil)
			w := httptest.NewRecorder()
			handler.CompleteAll(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CompleteAllResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedCount, body.Completed)
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().History(gomock.Any()).Return([]domain.CompletedPayout{
		{ID: uuid.New(), MemberID: "HJ001", Total: 185000, PaidAt: time.Now()},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/payouts/history", nil)
	w := httptest.NewRecorder()
	handler.History(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.CompletedPayoutResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "HJ001", body[0].MemberID)
}
