package memberservice

import (
	"context"
	"errors"
	"time"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=memberservice.go -destination=memberservice_mock.go -package=memberservice

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	UpdateName(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]domain.Member, error)
	HasDependents(ctx context.Context, id string) (bool, error)
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
	ErrMemberExists    = errors.New("member with this id already exists")
	ErrMemberNotFound  = errors.New("member not found")
	ErrMemberHasEvents = errors.New("member has recorded events")
	ErrInvalidMemberID = errors.New("invalid member id")
)

func (s *Service) Add(ctx context.Context, id, name string) (*domain.Member, error) {
	if !validate.IsMemberID(id) {
		return nil, ErrInvalidMemberID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("member already exists", zap.String("id", id))
		return nil, ErrMemberExists
	}

	member := &domain.Member{
		ID:       id,
		Name:     name,
		JoinedAt: time.Now(),
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}

	zap.L().Info("member registered", zap.String("id", id), zap.String("name", name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id, newName string) (*domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	if err := s.repo.UpdateName(ctx, id, newName); err != nil {
		zap.L().Error("can't rename member", zap.Error(err))
		return nil, err
	}
	member.Name = newName
	return member, nil
}

// Remove refuses to delete a member that is still referenced by ledger
// shares or a pending payout.
func (s *Service) Remove(ctx context.Context, id string) error {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	dependents, err := s.repo.HasDependents(ctx, id)
	if err != nil {
		zap.L().Error("can't check member dependents", zap.Error(err))
		return err
	}
	if dependents {
		return ErrMemberHasEvents
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete member", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	return members, nil
}
