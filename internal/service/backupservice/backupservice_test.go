package backupservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockEventRepo, *MockPayoutRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	members := NewMockMemberRepo(ctrl)
	events := NewMockEventRepo(ctrl)
	payouts := NewMockPayoutRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(members, events, payouts, txManager)
	defer ctrl.Finish()
	return service, members, events, payouts, txManager
}

func passthroughTX(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestExport(t *testing.T) {
	service, members, _, payouts, _ := NewMock(t)

	tests := []struct {
		name             string
		prepareMock      func()
		expectedSnapshot *Snapshot
		expectedError    error
	}{
		{
			name: "Full state",
			prepareMock: func() {
				members.EXPECT().FindAll(gomock.Any()).Return([]domain.Member{{ID: "HJ001", Name: "Malachi"}}, nil)
				payouts.EXPECT().FindAll(gomock.Any()).Return([]domain.Payout{{MemberID: "HJ001", Total: 185000}}, nil)
				payouts.EXPECT().FindCompleted(gomock.Any()).Return([]domain.CompletedPayout{{MemberID: "HJ002", Total: 60000}}, nil)
			},
		},
		{
			name: "Empty state exports empty collections",
			prepareMock: func() {
				members.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
				payouts.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
				payouts.EXPECT().FindCompleted(gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "Member export fails",
			prepareMock: func() {
				members.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			snapshot, err := service.Export(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot.Members)
				assert.NotNil(t, snapshot.Payouts)
				assert.NotNil(t, snapshot.Stats)
				assert.False(t, snapshot.ExportDate.IsZero())
			}
		})
	}
}

func TestRestore(t *testing.T) {
	service, members, events, payouts, txManager := NewMock(t)

	tests := []struct {
		name          string
		snapshot      *Snapshot
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Full snapshot replaces everything",
			snapshot: &Snapshot{
				Members: []domain.Member{{ID: "HJ001", Name: "Malachi"}},
				Payouts: []domain.Payout{{MemberID: "HJ001", Total: 185000, Counters: map[string]int64{"cayo": 1}}},
				Stats:   []domain.CompletedPayout{{MemberID: "HJ002", Total: 60000, PaidAt: time.Now()}},
			},
			prepareMock: func() {
				passthroughTX(txManager)
				payouts.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				events.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				members.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Member{ID: "HJ001"}, nil)
				payouts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				payouts.EXPECT().DeleteAllCompleted(gomock.Any()).Return(nil)
				payouts.EXPECT().SaveCompleted(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Absent collections stay untouched",
			snapshot: &Snapshot{
				Stats: []domain.CompletedPayout{{MemberID: "HJ002", Total: 60000}},
			},
			prepareMock: func() {
				passthroughTX(txManager)
				payouts.EXPECT().DeleteAllCompleted(gomock.Any()).Return(nil)
				payouts.EXPECT().SaveCompleted(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Member insert fails and aborts",
			snapshot: &Snapshot{
				Members: []domain.Member{{ID: "HJ001"}},
			},
			prepareMock: func() {
				passthroughTX(txManager)
				payouts.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				events.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				members.EXPECT().DeleteAll(gomock.Any()).Return(nil)
				members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Restore(context.Background(), tt.snapshot)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Event shares reference members, so a restore into a store with recorded
// events must clear the ledger before the registry or the member delete
// violates the foreign key.
func TestRestoreClearsLedgerBeforeMembers(t *testing.T) {
	service, members, events, payouts, txManager := NewMock(t)

	passthroughTX(txManager)
	gomock.InOrder(
		payouts.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		events.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		members.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Member{ID: "HJ001"}, nil),
	)

	err := service.Restore(context.Background(), &Snapshot{
		Members: []domain.Member{{ID: "HJ001", Name: "Malachi"}},
	})
	assert.NoError(t, err)
}
