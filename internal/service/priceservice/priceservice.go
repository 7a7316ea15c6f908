package priceservice

import (
	"context"
	"errors"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=priceservice.go -destination=priceservice_mock.go -package=priceservice

type Repo interface {
	FindByEventType(ctx context.Context, eventType string) (*domain.PriceEntry, error)
	Upsert(ctx context.Context, entry *domain.PriceEntry) error
	FindAll(ctx context.Context) ([]domain.PriceEntry, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrEmptyEventType = errors.New("event type cannot be empty")
	ErrNegativePrice  = errors.New("unit price cannot be negative")
)

// Get never fails on an unconfigured event type; it degrades to a
// zero-priced entry, which the ledger treats as unpriced.
func (s *Service) Get(ctx context.Context, eventType string) (*domain.PriceEntry, error) {
	entry, err := s.repo.FindByEventType(ctx, eventType)
	if err != nil {
		zap.L().Error("can't get price entry", zap.Error(err))
		return nil, err
	}
	if entry == nil {
		return &domain.PriceEntry{EventType: eventType}, nil
	}
	return entry, nil
}

func (s *Service) Set(ctx context.Context, entry *domain.PriceEntry) error {
	if entry.EventType == "" {
		return ErrEmptyEventType
	}
	if entry.UnitPrice < 0 {
		return ErrNegativePrice
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		zap.L().Error("can't set price entry", zap.Error(err))
		return err
	}
	zap.L().Info("price entry updated", zap.String("event_type", entry.EventType), zap.Int64("unit_price", entry.UnitPrice))
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.PriceEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list price entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
