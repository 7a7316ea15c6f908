package eventrepo

import (
	"context"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, event *domain.Event) error {
	query := `
        INSERT INTO events (id, event_type, quantity, pool_amount, total_amount, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, event.ID, event.EventType, event.Quantity, event.PoolAmount, event.TotalAmount, event.RecordedAt)
	if err != nil {
		zap.L().Error("can't save event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveShare(ctx context.Context, share *domain.EventShare) error {
	query := `
        INSERT INTO event_shares (event_id, member_id, amount)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.Exec(ctx, query, share.EventID, share.MemberID, share.Amount)
	if err != nil {
		zap.L().Error("can't save event share", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Event, error) {
	query := `
        SELECT id, event_type, quantity, pool_amount, total_amount, recorded_at
        FROM events
        ORDER BY recorded_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		err := rows.Scan(&event.ID, &event.EventType, &event.Quantity, &event.PoolAmount, &event.TotalAmount, &event.RecordedAt)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID string) ([]domain.Event, error) {
	query := `
        SELECT e.id, e.event_type, e.quantity, e.pool_amount, e.total_amount, e.recorded_at
        FROM events e
        JOIN event_shares s ON s.event_id = e.id
        WHERE s.member_id = $1
        ORDER BY e.recorded_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get member events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		err := rows.Scan(&event.ID, &event.EventType, &event.Quantity, &event.PoolAmount, &event.TotalAmount, &event.RecordedAt)
		if err != nil {
			zap.L().Error("can't scan member event row", zap.Error(err))
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// DeleteAll wipes the ledger, shares first because of the event reference.
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM event_shares`); err != nil {
		zap.L().Error("can't delete event shares", zap.Error(err))
		return err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM events`); err != nil {
		zap.L().Error("can't delete events", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindShares(ctx context.Context, eventID string) ([]domain.EventShare, error) {
	query := `
        SELECT event_id, member_id, amount
        FROM event_shares
        WHERE event_id = $1
        ORDER BY member_id ASC
    `
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		zap.L().Error("can't get event shares", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shares []domain.EventShare
	for rows.Next() {
		var share domain.EventShare
		if err := rows.Scan(&share.EventID, &share.MemberID, &share.Amount); err != nil {
			zap.L().Error("can't scan event share row", zap.Error(err))
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, nil
}
