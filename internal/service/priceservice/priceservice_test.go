package priceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		eventType     string
		prepareMock   func()
		expectedEntry *domain.PriceEntry
		expectedError error
	}{
		{
			name:      "Configured event type",
			eventType: "bizwar_win",
			prepareMock: func() {
				repo.EXPECT().FindByEventType(gomock.Any(), "bizwar_win").Return(&domain.PriceEntry{
					EventType: "bizwar_win",
					UnitPrice: 20000,
					Unit:      "round",
				}, nil)
			},
			expectedEntry: &domain.PriceEntry{EventType: "bizwar_win", UnitPrice: 20000, Unit: "round"},
		},
		{
			name:      "Unconfigured event type degrades to zero price",
			eventType: "unknown_raid",
			prepareMock: func() {
				repo.EXPECT().FindByEventType(gomock.Any(), "unknown_raid").Return(nil, nil)
			},
			expectedEntry: &domain.PriceEntry{EventType: "unknown_raid"},
		},
		{
			name:      "Lookup fails",
			eventType: "bizwar_win",
			prepareMock: func() {
				repo.EXPECT().FindByEventType(gomock.Any(), "bizwar_win").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entry, err := service.Get(context.Background(), tt.eventType)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEntry, entry)
			}
		})
	}
}

func TestSet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		entry         *domain.PriceEntry
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful upsert",
			entry: &domain.PriceEntry{EventType: "hafen", UnitPrice: 40000, Unit: "delivery"},
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), &domain.PriceEntry{
					EventType: "hafen",
					UnitPrice: 40000,
					Unit:      "delivery",
				}).Return(nil)
			},
		},
		{
			name:          "Empty event type",
			entry:         &domain.PriceEntry{UnitPrice: 40000},
			expectedError: ErrEmptyEventType,
		},
		{
			name:          "Negative unit price",
			entry:         &domain.PriceEntry{EventType: "hafen", UnitPrice: -1},
			expectedError: ErrNegativePrice,
		},
		{
			name:  "Upsert fails",
			entry: &domain.PriceEntry{EventType: "hafen", UnitPrice: 40000},
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Set(context.Background(), tt.entry)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListEntries(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedEntries []domain.PriceEntry
		expectedError   error
	}{
		{
			name: "All entries",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return([]domain.PriceEntry{
					{EventType: "bizwar_win", UnitPrice: 20000},
					{EventType: "cayo", Pooled: true},
				}, nil)
			},
			expectedEntries: []domain.PriceEntry{
				{EventType: "bizwar_win", UnitPrice: 20000},
				{EventType: "cayo", Pooled: true},
			},
		},
		{
			name: "Listing fails",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			entries, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEntries, entries)
			}
		})
	}
}
