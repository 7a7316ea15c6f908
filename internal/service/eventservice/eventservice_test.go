package eventservice

import (
	"context"
	"errors"
	"testing"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockEventRepo, *MockMemberRepo, *MockPriceRepo, *MockPayoutRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	events := NewMockEventRepo(ctrl)
	members := NewMockMemberRepo(ctrl)
	prices := NewMockPriceRepo(ctrl)
	payouts := NewMockPayoutRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(events, members, prices, payouts, txManager)
	defer ctrl.Finish()
	return service, events, members, prices, payouts, txManager
}

func passthroughTX(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRecordPerUnit(t *testing.T) {
	service, events, members, prices, payouts, txManager := NewMock(t)

	members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001", Name: "Malachi"}, nil)
	members.EXPECT().FindByID(gomock.Any(), "HJ002").Return(&domain.Member{ID: "HJ002", Name: "Ezekiel"}, nil)
	prices.EXPECT().FindByEventType(gomock.Any(), "bizwar_win").Return(&domain.PriceEntry{
		EventType: "bizwar_win",
		UnitPrice: 20000,
		Unit:      "round",
	}, nil)
	passthroughTX(txManager)
	events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	events.EXPECT().SaveShare(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, share *domain.EventShare) error {
			assert.Equal(t, int64(60000), share.Amount)
			return nil
		}).Times(2)
	payouts.EXPECT().ApplyDelta(gomock.Any(), "HJ001", "Malachi", "bizwar_win", int64(3), int64(60000)).Return(nil)
	payouts.EXPECT().ApplyDelta(gomock.Any(), "HJ002", "Ezekiel", "bizwar_win", int64(3), int64(60000)).Return(nil)

	event, err := service.Record(context.Background(), RecordRequest{
		EventType:      "bizwar_win",
		ParticipantIDs: []string{"HJ001", "HJ002"},
		Quantity:       3,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(120000), event.TotalAmount)
	assert.Equal(t, "bizwar_win", event.EventType)
}

func TestRecordPooled(t *testing.T) {
	service, events, members, prices, payouts, txManager := NewMock(t)

	tests := []struct {
		name          string
		poolAmount    int64
		participants  []string
		perMember     int64
		expectedTotal int64
	}{
		{
			name:          "Pool splits evenly",
			poolAmount:    250000,
			participants:  []string{"HJ001", "HJ002"},
			perMember:     125000,
			expectedTotal: 250000,
		},
		{
			name:          "Pool rounds per share",
			poolAmount:    100,
			participants:  []string{"HJ001", "HJ002", "HJ003"},
			perMember:     33,
			expectedTotal: 99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, id := range tt.participants {
				members.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Member{ID: id, Name: id}, nil)
			}
			prices.EXPECT().FindByEventType(gomock.Any(), "cayo").Return(&domain.PriceEntry{
				EventType: "cayo",
				Pooled:    true,
			}, nil)
			passthroughTX(txManager)
			events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			events.EXPECT().SaveShare(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, share *domain.EventShare) error {
					assert.Equal(t, tt.perMember, share.Amount)
					return nil
				}).Times(len(tt.participants))
			payouts.EXPECT().
				ApplyDelta(gomock.Any(), gomock.Any(), gomock.Any(), "cayo", int64(1), tt.perMember).
				Return(nil).
				Times(len(tt.participants))

			event, err := service.Record(context.Background(), RecordRequest{
				EventType:      "cayo",
				ParticipantIDs: tt.participants,
				Quantity:       1,
				PoolAmount:     tt.poolAmount,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, event.TotalAmount)
			assert.Equal(t, tt.poolAmount, event.PoolAmount)
		})
	}
}

func TestRecordPooledWithoutQuantity(t *testing.T) {
	service, events, members, prices, payouts, txManager := NewMock(t)

	members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001", Name: "Malachi"}, nil)
	members.EXPECT().FindByID(gomock.Any(), "HJ002").Return(&domain.Member{ID: "HJ002", Name: "Ezekiel"}, nil)
	prices.EXPECT().FindByEventType(gomock.Any(), "cayo").Return(&domain.PriceEntry{
		EventType: "cayo",
		Pooled:    true,
	}, nil)
	passthroughTX(txManager)
	events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	events.EXPECT().SaveShare(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	payouts.EXPECT().ApplyDelta(gomock.Any(), "HJ001", "Malachi", "cayo", int64(1), int64(125000)).Return(nil)
	payouts.EXPECT().ApplyDelta(gomock.Any(), "HJ002", "Ezekiel", "cayo", int64(1), int64(125000)).Return(nil)

	event, err := service.Record(context.Background(), RecordRequest{
		EventType:      "cayo",
		ParticipantIDs: []string{"HJ001", "HJ002"},
		PoolAmount:     250000,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(250000), event.TotalAmount)
	assert.Equal(t, int64(1), event.Quantity)
}

func TestRecordValidation(t *testing.T) {
	service, _, members, prices, _, _ := NewMock(t)

	tests := []struct {
		name          string
		req           RecordRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "No participants",
			req:           RecordRequest{EventType: "bizwar_win", Quantity: 1},
			expectedError: ErrNoParticipants,
		},
		{
			name: "Zero quantity on a per-unit type",
			req:  RecordRequest{EventType: "bizwar_win", ParticipantIDs: []string{"HJ001"}},
			prepareMock: func() {
				members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001"}, nil)
				prices.EXPECT().FindByEventType(gomock.Any(), "bizwar_win").Return(&domain.PriceEntry{EventType: "bizwar_win", UnitPrice: 20000}, nil)
			},
			expectedError: ErrInvalidQuantity,
		},
		{
			name: "Unknown participant",
			req:  RecordRequest{EventType: "bizwar_win", ParticipantIDs: []string{"HJ404"}, Quantity: 1},
			prepareMock: func() {
				members.EXPECT().FindByID(gomock.Any(), "HJ404").Return(nil, nil)
			},
			expectedError: ErrUnknownParticipant,
		},
		{
			name: "Event type without a price row",
			req:  RecordRequest{EventType: "ghost_raid", ParticipantIDs: []string{"HJ001"}, Quantity: 1},
			prepareMock: func() {
				members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001"}, nil)
				prices.EXPECT().FindByEventType(gomock.Any(), "ghost_raid").Return(nil, nil)
			},
			expectedError: ErrUnpricedEventType,
		},
		{
			name: "Per-unit event type priced at zero",
			req:  RecordRequest{EventType: "hafen", ParticipantIDs: []string{"HJ001"}, Quantity: 1},
			prepareMock: func() {
				members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001"}, nil)
				prices.EXPECT().FindByEventType(gomock.Any(), "hafen").Return(&domain.PriceEntry{EventType: "hafen"}, nil)
			},
			expectedError: ErrUnpricedEventType,
		},
		{
			name: "Pooled event type without a pool amount",
			req:  RecordRequest{EventType: "cayo", ParticipantIDs: []string{"HJ001"}, Quantity: 1},
			prepareMock: func() {
				members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001"}, nil)
				prices.EXPECT().FindByEventType(gomock.Any(), "cayo").Return(&domain.PriceEntry{EventType: "cayo", Pooled: true}, nil)
			},
			expectedError: ErrInvalidPoolAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			event, err := service.Record(context.Background(), tt.req)
			assert.Nil(t, event)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestRecordDeduplicatesParticipants(t *testing.T) {
	service, events, members, prices, payouts, txManager := NewMock(t)

	members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001", Name: "Malachi"}, nil)
	prices.EXPECT().FindByEventType(gomock.Any(), "giesserei").Return(&domain.PriceEntry{
		EventType: "giesserei",
		UnitPrice: 10000,
	}, nil)
	passthroughTX(txManager)
	events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	events.EXPECT().SaveShare(gomock.Any(), gomock.Any()).Return(nil)
	payouts.EXPECT().ApplyDelta(gomock.Any(), "HJ001", "Malachi", "giesserei", int64(2), int64(20000)).Return(nil)

	event, err := service.Record(context.Background(), RecordRequest{
		EventType:      "giesserei",
		ParticipantIDs: []string{"HJ001", "HJ001", "HJ001"},
		Quantity:       2,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), event.TotalAmount)
}

func TestRecordRollsBackOnFailure(t *testing.T) {
	service, events, members, prices, _, txManager := NewMock(t)

	members.EXPECT().FindByID(gomock.Any(), "HJ001").Return(&domain.Member{ID: "HJ001", Name: "Malachi"}, nil)
	prices.EXPECT().FindByEventType(gomock.Any(), "bizwar_win").Return(&domain.PriceEntry{
		EventType: "bizwar_win",
		UnitPrice: 20000,
	}, nil)
	passthroughTX(txManager)
	events.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	event, err := service.Record(context.Background(), RecordRequest{
		EventType:      "bizwar_win",
		ParticipantIDs: []string{"HJ001"},
		Quantity:       1,
	})
	assert.Nil(t, event)
	assert.Error(t, err)
	assert.Equal(t, "db error", err.Error())
}

func TestListEvents(t *testing.T) {
	service, events, _, _, _, _ := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedEvents []domain.Event
		expectedError  error
	}{
		{
			name: "Ledger newest first",
			prepareMock: func() {
				events.EXPECT().FindAll(gomock.Any()).Return([]domain.Event{
					{EventType: "cayo", TotalAmount: 250000},
					{EventType: "bizwar_win", TotalAmount: 120000},
				}, nil)
			},
			expectedEvents: []domain.Event{
				{EventType: "cayo", TotalAmount: 250000},
				{EventType: "bizwar_win", TotalAmount: 120000},
			},
		},
		{
			name: "Listing fails",
			prepareMock: func() {
				events.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEvents, got)
			}
		})
	}
}

func TestListByMember(t *testing.T) {
	service, events, _, _, _, _ := NewMock(t)

	events.EXPECT().FindByMemberID(gomock.Any(), "HJ001").Return([]domain.Event{
		{EventType: "bizwar_win", TotalAmount: 120000},
	}, nil)

	got, err := service.ListByMember(context.Background(), "HJ001")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "bizwar_win", got[0].EventType)
}

func TestSplitPool(t *testing.T) {
	tests := []struct {
		name         string
		pool         int64
		participants int64
		expected     int64
	}{
		{name: "Even split", pool: 250000, participants: 2, expected: 125000},
		{name: "Rounds down", pool: 100, participants: 3, expected: 33},
		{name: "Rounds up", pool: 200, participants: 3, expected: 67},
		{name: "Single participant", pool: 99, participants: 1, expected: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitPool(tt.pool, tt.participants))
		})
	}
}
