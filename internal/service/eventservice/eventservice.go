package eventservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=eventservice.go -destination=eventservice_mock.go -package=eventservice

type EventRepo interface {
	Save(ctx context.Context, event *domain.Event) error
	SaveShare(ctx context.Context, share *domain.EventShare) error
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByMemberID(ctx context.Context, memberID string) ([]domain.Event, error)
}

type MemberRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Member, error)
}

type PriceRepo interface {
	FindByEventType(ctx context.Context, eventType string) (*domain.PriceEntry, error)
}

type PayoutRepo interface {
	ApplyDelta(ctx context.Context, memberID string, memberName string, eventType string, quantity int64, amount int64) error
}

type Service struct {
	events    EventRepo
	members   MemberRepo
	prices    PriceRepo
	payouts   PayoutRepo
	txManager pg.TXManager
}

func New(events EventRepo, members MemberRepo, prices PriceRepo, payouts PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		events:    events,
		members:   members,
		prices:    prices,
		payouts:   payouts,
		txManager: txManager,
	}
}

var (
	ErrNoParticipants     = errors.New("event needs at least one participant")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidPoolAmount  = errors.New("pool amount must be positive")
	ErrUnpricedEventType  = errors.New("event type has no price configured")
)

type RecordRequest struct {
	EventType      string
	ParticipantIDs []string
	Quantity       int64
	PoolAmount     int64
}

// Record validates a submission, prices it and applies it atomically:
// the ledger row, the per-member shares and the pending-payout deltas
// either all land or none do.
//
// Pooled types split the pool evenly, rounding each share to the nearest
// unit; the sum of shares may drift from the submitted pool by up to
// participants-1 units and is reported as-is. Per-unit types credit the
// full unit price times quantity to every participant.
func (s *Service) Record(ctx context.Context, req RecordRequest) (*domain.Event, error) {
	if len(req.ParticipantIDs) == 0 {
		return nil, ErrNoParticipants
	}

	participants, err := s.resolveParticipants(ctx, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	price, err := s.prices.FindByEventType(ctx, req.EventType)
	if err != nil {
		zap.L().Error("can't get price entry", zap.Error(err))
		return nil, err
	}
	if price == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnpricedEventType, req.EventType)
	}

	var perMember int64
	quantity := req.Quantity
	if price.Pooled {
		if req.PoolAmount <= 0 {
			return nil, ErrInvalidPoolAmount
		}
		// Pooled submissions carry no quantity; the counter still
		// increments once per recorded event.
		if quantity <= 0 {
			quantity = 1
		}
		perMember = splitPool(req.PoolAmount, int64(len(participants)))
	} else {
		if quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if price.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnpricedEventType, req.EventType)
		}
		perMember = price.UnitPrice * quantity
	}

	event := &domain.Event{
		ID:          uuid.New(),
		EventType:   req.EventType,
		Quantity:    quantity,
		PoolAmount:  req.PoolAmount,
		TotalAmount: perMember * int64(len(participants)),
		RecordedAt:  time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.events.Save(ctx, event); err != nil {
			return err
		}
		for _, member := range participants {
			share := &domain.EventShare{
				EventID:  event.ID,
				MemberID: member.ID,
				Amount:   perMember,
			}
			if err := s.events.SaveShare(ctx, share); err != nil {
				return err
			}
			if err := s.payouts.ApplyDelta(ctx, member.ID, member.Name, req.EventType, quantity, perMember); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't record event", zap.Error(err))
		return nil, err
	}

	zap.L().Info("event recorded",
		zap.String("event_type", req.EventType),
		zap.Int("participants", len(participants)),
		zap.Int64("total_amount", event.TotalAmount),
	)
	return event, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID string) ([]domain.Event, error) {
	events, err := s.events.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't list member events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

// resolveParticipants looks up every submitted id, dropping duplicates
// and rejecting ids missing from the registry.
func (s *Service) resolveParticipants(ctx context.Context, ids []string) ([]domain.Member, error) {
	seen := make(map[string]struct{}, len(ids))
	participants := make([]domain.Member, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		member, err := s.members.FindByID(ctx, id)
		if err != nil {
			zap.L().Error("can't find participant", zap.Error(err))
			return nil, err
		}
		if member == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, id)
		}
		participants = append(participants, *member)
	}
	return participants, nil
}

func splitPool(pool, participants int64) int64 {
	return int64(math.Round(float64(pool) / float64(participants)))
}
