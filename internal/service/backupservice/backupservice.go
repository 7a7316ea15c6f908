package backupservice

import (
	"context"
	"time"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=backupservice.go -destination=backupservice_mock.go -package=backupservice

type MemberRepo interface {
	FindAll(ctx context.Context) ([]domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	DeleteAll(ctx context.Context) error
}

type EventRepo interface {
	DeleteAll(ctx context.Context) error
}

type PayoutRepo interface {
	FindAll(ctx context.Context) ([]domain.Payout, error)
	Save(ctx context.Context, payout *domain.Payout) error
	DeleteAll(ctx context.Context) error
	FindCompleted(ctx context.Context) ([]domain.CompletedPayout, error)
	SaveCompleted(ctx context.Context, completed *domain.CompletedPayout) error
	DeleteAllCompleted(ctx context.Context) error
}

// Snapshot is the backup contract: a nil collection means "not present",
// and Restore leaves the corresponding store collection untouched.
type Snapshot struct {
	Members    []domain.Member
	Payouts    []domain.Payout
	Stats      []domain.CompletedPayout
	ExportDate time.Time
}

type Service struct {
	members   MemberRepo
	events    EventRepo
	payouts   PayoutRepo
	txManager pg.TXManager
}

func New(members MemberRepo, events EventRepo, payouts PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		members:   members,
		events:    events,
		payouts:   payouts,
		txManager: txManager,
	}
}

func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't export members", zap.Error(err))
		return nil, err
	}
	payouts, err := s.payouts.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't export payouts", zap.Error(err))
		return nil, err
	}
	stats, err := s.payouts.FindCompleted(ctx)
	if err != nil {
		zap.L().Error("can't export payout history", zap.Error(err))
		return nil, err
	}

	if members == nil {
		members = []domain.Member{}
	}
	if payouts == nil {
		payouts = []domain.Payout{}
	}
	if stats == nil {
		stats = []domain.CompletedPayout{}
	}

	return &Snapshot{
		Members:    members,
		Payouts:    payouts,
		Stats:      stats,
		ExportDate: time.Now(),
	}, nil
}

// Restore overwrites every collection present in the snapshot in a single
// transaction. Payouts and event shares reference members, so both are
// cleared before members are deleted and members are restored before
// payouts. The event ledger is not part of the snapshot; replacing the
// registry discards it.
func (s *Service) Restore(ctx context.Context, snapshot *Snapshot) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if snapshot.Members != nil || snapshot.Payouts != nil {
			if err := s.payouts.DeleteAll(ctx); err != nil {
				return err
			}
		}

		if snapshot.Members != nil {
			if err := s.events.DeleteAll(ctx); err != nil {
				return err
			}
			if err := s.members.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range snapshot.Members {
				if _, err := s.members.Create(ctx, &snapshot.Members[i]); err != nil {
					return err
				}
			}
		}

		if snapshot.Payouts != nil {
			for i := range snapshot.Payouts {
				if err := s.payouts.Save(ctx, &snapshot.Payouts[i]); err != nil {
					return err
				}
			}
		}

		if snapshot.Stats != nil {
			if err := s.payouts.DeleteAllCompleted(ctx); err != nil {
				return err
			}
			for i := range snapshot.Stats {
				if err := s.payouts.SaveCompleted(ctx, &snapshot.Stats[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't restore snapshot", zap.Error(err))
		return err
	}

	zap.L().Info("snapshot restored",
		zap.Int("members", len(snapshot.Members)),
		zap.Int("payouts", len(snapshot.Payouts)),
		zap.Int("stats", len(snapshot.Stats)),
	)
	return nil
}
