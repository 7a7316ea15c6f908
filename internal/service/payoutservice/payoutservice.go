package payoutservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payoutservice.go -destination=payoutservice_mock.go -package=payoutservice

type Repo interface {
	FindByMemberID(ctx context.Context, memberID string) (*domain.Payout, error)
	FindAll(ctx context.Context) ([]domain.Payout, error)
	Delete(ctx context.Context, memberID string) error
	SaveCompleted(ctx context.Context, completed *domain.CompletedPayout) error
	FindCompleted(ctx context.Context) ([]domain.CompletedPayout, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

var ErrNoPendingPayout = errors.New("no pending payout for member")

// GetPending returns a zero-valued payout when the member has no
// accumulated balance.
func (s *Service) GetPending(ctx context.Context, memberID string) (*domain.Payout, error) {
	payout, err := s.repo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't get pending payout", zap.Error(err))
		return nil, err
	}
	if payout == nil {
		return &domain.Payout{MemberID: memberID, Counters: map[string]int64{}}, nil
	}
	return payout, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Payout, error) {
	payouts, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list pending payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

// Complete moves a member's pending balance into the permanent history.
// There is no reversal; the history row is the audit trail.
func (s *Service) Complete(ctx context.Context, memberID string) (*domain.CompletedPayout, error) {
	var completed *domain.CompletedPayout

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payout, err := s.repo.FindByMemberID(ctx, memberID)
		if err != nil {
			return err
		}
		if payout == nil || payout.Total == 0 {
			return ErrNoPendingPayout
		}

		completed = snapshot(payout, time.Now())
		if err := s.repo.SaveCompleted(ctx, completed); err != nil {
			return err
		}
		return s.repo.Delete(ctx, memberID)
	})
	if err != nil {
		if !errors.Is(err, ErrNoPendingPayout) {
			zap.L().Error("can't complete payout", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("payout completed", zap.String("member_id", memberID), zap.Int64("total", completed.Total))
	return completed, nil
}

// CompleteAll settles every member with a nonzero pending balance in one
// transaction and returns how many were settled.
func (s *Service) CompleteAll(ctx context.Context) (int, error) {
	var count int

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payouts, err := s.repo.FindAll(ctx)
		if err != nil {
			return err
		}

		paidAt := time.Now()
		for i := range payouts {
			if payouts[i].Total == 0 {
				continue
			}
			if err := s.repo.SaveCompleted(ctx, snapshot(&payouts[i], paidAt)); err != nil {
				return err
			}
			if err := s.repo.Delete(ctx, payouts[i].MemberID); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't complete payouts", zap.Error(err))
		return 0, err
	}

	zap.L().Info("all pending payouts completed", zap.Int("count", count))
	return count, nil
}

func (s *Service) History(ctx context.Context) ([]domain.CompletedPayout, error) {
	completed, err := s.repo.FindCompleted(ctx)
	if err != nil {
		zap.L().Error("can't get payout history", zap.Error(err))
		return nil, err
	}
	return completed, nil
}

func snapshot(payout *domain.Payout, paidAt time.Time) *domain.CompletedPayout {
	counters := make(map[string]int64, len(payout.Counters))
	for eventType, quantity := range payout.Counters {
		counters[eventType] = quantity
	}
	return &domain.CompletedPayout{
		ID:         uuid.New(),
		MemberID:   payout.MemberID,
		MemberName: payout.MemberName,
		Total:      payout.Total,
		Counters:   counters,
		PaidAt:     paidAt,
	}
}
