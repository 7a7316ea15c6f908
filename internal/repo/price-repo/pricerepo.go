package pricerepo

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

func (r *Repository) FindByEventType(ctx context.Context, eventType string) (*domain.PriceEntry, error) {
	query := `
        SELECT event_type, unit_price, description, unit, pooled
        FROM event_prices
        WHERE event_type = $1
    `
	var entry domain.PriceEntry
	err := r.db.QueryRow(ctx, query, eventType).Scan(&entry.EventType, &entry.UnitPrice, &entry.Description, &entry.Unit, &entry.Pooled)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find price entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) Upsert(ctx context.Context, entry *domain.PriceEntry) error {
	query := `
        INSERT INTO event_prices (event_type, unit_price, description, unit, pooled)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (event_type) DO UPDATE
        SET unit_price = EXCLUDED.unit_price,
            description = EXCLUDED.description,
            unit = EXCLUDED.unit,
            pooled = EXCLUDED.pooled
    `
	_, err := r.db.Exec(ctx, query, entry.EventType, entry.UnitPrice, entry.Description, entry.Unit, entry.Pooled)
	if err != nil {
		zap.L().Error("can't upsert price entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.PriceEntry, error) {
	query := `
        SELECT event_type, unit_price, description, unit, pooled
        FROM event_prices
        ORDER BY event_type ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get price entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PriceEntry
	for rows.Next() {
		var entry domain.PriceEntry
		err := rows.Scan(&entry.EventType, &entry.UnitPrice, &entry.Description, &entry.Unit, &entry.Pooled)
		if err != nil {
			zap.L().Error("can't scan price entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
