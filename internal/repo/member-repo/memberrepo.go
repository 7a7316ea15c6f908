package memberrepo

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

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.QueryRow(ctx, "SELECT id, name, joined_at FROM members WHERE id = $1", id).Scan(&member.ID, &member.Name, &member.JoinedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (id, name, joined_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, member.ID, member.Name, member.JoinedAt)
	if err != nil {
		zap.L().Error("can't save member", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (r *Repository) UpdateName(ctx context.Context, id string, name string) error {
	_, err := r.db.Exec(ctx, "UPDATE members SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		zap.L().Error("can't update member name", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM members WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete member", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Member, error) {
	query := `
        SELECT id, name, joined_at
        FROM members
        ORDER BY joined_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		err := rows.Scan(&member.ID, &member.Name, &member.JoinedAt)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// HasDependents reports whether any ledger share or pending payout still
// references the member.
func (r *Repository) HasDependents(ctx context.Context, id string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM event_shares WHERE member_id = $1)
            OR EXISTS (SELECT 1 FROM payouts WHERE member_id = $1)
    `
	var dependents bool
	err := r.db.QueryRow(ctx, query, id).Scan(&dependents)
	if err != nil {
		zap.L().Error("can't check member dependents", zap.Error(err))
		return false, err
	}
	return dependents, nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM members")
	if err != nil {
		zap.L().Error("can't clear members", zap.Error(err))
		return err
	}
	return nil
}
