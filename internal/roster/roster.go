package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hexenjaeger/clanledger/internal/config"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/service/memberservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hexenjaeger/clanledger/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	syncWorkers   = 4
)

var syncingMembers sync.Map

type rosterMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MemberService interface {
	Add(ctx context.Context, id, name string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
}

// Service mirrors an external clan roster into the local member registry.
// Members present upstream but unknown locally are registered; nothing is
// ever removed.
type Service struct {
	url            string
	members        MemberService
	client         clients.HTTPClientI
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, members MemberService, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.RosterAddress,
		members:        members,
		client:         client,
		workerPool:     NewWorkerPool(syncWorkers),
		updateInterval: cfg.RosterInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.url == "" {
		zap.L().Info("Roster sync disabled")
		return
	}
	zap.L().Info("Roster sync started", zap.String("url", s.url))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping roster sync")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.syncRoster(ctx)
		}
	}
}

func (s *Service) syncRoster(ctx context.Context) {
	upstream, err := s.fetchRoster(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch roster", zap.Error(err))
		return
	}

	known, err := s.members.List(ctx)
	if err != nil {
		zap.L().Error("Failed to list local members", zap.Error(err))
		return
	}
	knownIDs := make(map[string]struct{}, len(known))
	for _, member := range known {
		knownIDs[member.ID] = struct{}{}
	}

	var g errgroup.Group
	for _, member := range upstream {
		member := member

		if _, ok := knownIDs[member.ID]; ok {
			continue
		}
		if _, loaded := syncingMembers.LoadOrStore(member.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer syncingMembers.Delete(member.ID)
				return s.registerMember(ctx, member)
			})
			if err != nil {
				syncingMembers.Delete(member.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error syncing roster", zap.Error(err))
	}
}

func (s *Service) fetchRoster(ctx context.Context) ([]rosterMember, error) {
	url := s.url + "/api/members"

	var statusCode int
	var respBody []byte
	var respHeaders http.Header
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("failed to fetch roster after %d retries: %w", maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.waitForRateLimit(respHeaders, attempt)
				continue
			case http.StatusOK:
				var members []rosterMember
				if err := json.Unmarshal(respBody, &members); err != nil {
					return nil, fmt.Errorf("failed to parse roster response: %w", err)
				}
				return members, nil
			default:
				zap.L().Error("Unexpected roster status code", zap.Int("status", statusCode))
				return nil, errors.New("unexpected status code")
			}
		}
	}
	return nil, fmt.Errorf("failed to fetch roster after %d retries", maxRetries)
}

func (s *Service) registerMember(ctx context.Context, member rosterMember) error {
	_, err := s.members.Add(ctx, member.ID, member.Name)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberExists) {
			return nil
		}
		return fmt.Errorf("failed to register roster member %s: %w", member.ID, err)
	}
	zap.L().Info("Roster member registered", zap.String("id", member.ID), zap.String("name", member.Name))
	return nil
}

func (s *Service) waitForRateLimit(respHeaders http.Header, attempt int) {
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader := respHeaders.Get("Retry-After"); retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	time.Sleep(retryAfter)
}
