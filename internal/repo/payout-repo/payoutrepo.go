package payoutrepo

import (
	"context"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) FindByMemberID(ctx context.Context, memberID string) (*domain.Payout, error) {
	query := `
        SELECT member_id, member_name, total
        FROM payouts
        WHERE member_id = $1
    `
	var payout domain.Payout
	err := r.db.QueryRow(ctx, query, memberID).Scan(&payout.MemberID, &payout.MemberName, &payout.Total)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}

	counters, err := r.findCounters(ctx, memberID)
	if err != nil {
		return nil, err
	}
	payout.Counters = counters
	return &payout, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Payout, error) {
	query := `
        SELECT member_id, member_name, total
        FROM payouts
        ORDER BY member_id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var payout domain.Payout
		if err := rows.Scan(&payout.MemberID, &payout.MemberName, &payout.Total); err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, payout)
	}
	rows.Close()

	for i := range payouts {
		counters, err := r.findCounters(ctx, payouts[i].MemberID)
		if err != nil {
			return nil, err
		}
		payouts[i].Counters = counters
	}
	return payouts, nil
}

// ApplyDelta credits one event's contribution to a member: the pending row
// is created on first touch, then total and the event-type counter grow.
func (r *Repository) ApplyDelta(ctx context.Context, memberID string, memberName string, eventType string, quantity int64, amount int64) error {
	upsertPayout := `
        INSERT INTO payouts (member_id, member_name, total)
        VALUES ($1, $2, $3)
        ON CONFLICT (member_id) DO UPDATE
        SET total = payouts.total + EXCLUDED.total,
            member_name = EXCLUDED.member_name
    `
	if _, err := r.db.Exec(ctx, upsertPayout, memberID, memberName, amount); err != nil {
		zap.L().Error("can't apply payout delta", zap.Error(err))
		return err
	}

	upsertCounter := `
        INSERT INTO payout_counters (member_id, event_type, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (member_id, event_type) DO UPDATE
        SET quantity = payout_counters.quantity + EXCLUDED.quantity
    `
	if _, err := r.db.Exec(ctx, upsertCounter, memberID, eventType, quantity); err != nil {
		zap.L().Error("can't apply counter delta", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, payout *domain.Payout) error {
	query := `
        INSERT INTO payouts (member_id, member_name, total)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, payout.MemberID, payout.MemberName, payout.Total); err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return err
	}
	for eventType, quantity := range payout.Counters {
		counterQuery := `
            INSERT INTO payout_counters (member_id, event_type, quantity)
            VALUES ($1, $2, $3)
        `
		if _, err := r.db.Exec(ctx, counterQuery, payout.MemberID, eventType, quantity); err != nil {
			zap.L().Error("can't save payout counter", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, memberID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM payouts WHERE member_id = $1", memberID)
	if err != nil {
		zap.L().Error("can't delete payout", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM payouts")
	if err != nil {
		zap.L().Error("can't clear payouts", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveCompleted(ctx context.Context, completed *domain.CompletedPayout) error {
	query := `
        INSERT INTO completed_payouts (id, member_id, member_name, total, counters, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, completed.ID, completed.MemberID, completed.MemberName, completed.Total, completed.Counters, completed.PaidAt)
	if err != nil {
		zap.L().Error("can't save completed payout", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindCompleted(ctx context.Context) ([]domain.CompletedPayout, error) {
	query := `
        SELECT id, member_id, member_name, total, counters, paid_at
        FROM completed_payouts
        ORDER BY paid_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get completed payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var completed []domain.CompletedPayout
	for rows.Next() {
		var cp domain.CompletedPayout
		if err := rows.Scan(&cp.ID, &cp.MemberID, &cp.MemberName, &cp.Total, &cp.Counters, &cp.PaidAt); err != nil {
			zap.L().Error("can't scan completed payout row", zap.Error(err))
			return nil, err
		}
		completed = append(completed, cp)
	}
	return completed, nil
}

func (r *Repository) DeleteAllCompleted(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM completed_payouts")
	if err != nil {
		zap.L().Error("can't clear completed payouts", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findCounters(ctx context.Context, memberID string) (map[string]int64, error) {
	query := `
        SELECT event_type, quantity
        FROM payout_counters
        WHERE member_id = $1
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get payout counters", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int64)
	for rows.Next() {
		var eventType string
		var quantity int64
		if err := rows.Scan(&eventType, &quantity); err != nil {
			zap.L().Error("can't scan payout counter row", zap.Error(err))
			return nil, err
		}
		counters[eventType] = quantity
	}
	return counters, nil
}
