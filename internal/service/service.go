package service

import (
	"github.com/hexenjaeger/clanledger/internal/config"
	"github.com/hexenjaeger/clanledger/internal/handlers/auth"
	"github.com/hexenjaeger/clanledger/internal/handlers/backup"
	"github.com/hexenjaeger/clanledger/internal/handlers/events"
	"github.com/hexenjaeger/clanledger/internal/handlers/members"
	"github.com/hexenjaeger/clanledger/internal/handlers/payouts"
	"github.com/hexenjaeger/clanledger/internal/handlers/prices"

	pkgauth "github.com/hexenjaeger/clanledger/pkg/auth"
	"github.com/hexenjaeger/clanledger/pkg/clients"

	"github.com/hexenjaeger/clanledger/internal/pg"
	"github.com/hexenjaeger/clanledger/internal/repo"
	"github.com/hexenjaeger/clanledger/internal/service/authservice"
	"github.com/hexenjaeger/clanledger/internal/service/backupservice"
	"github.com/hexenjaeger/clanledger/internal/service/eventservice"
	"github.com/hexenjaeger/clanledger/internal/service/memberservice"
	"github.com/hexenjaeger/clanledger/internal/service/payoutservice"
	"github.com/hexenjaeger/clanledger/internal/service/priceservice"
)

type Services struct {
	MemberService members.Service
	PriceService  prices.Service
	EventService  events.Service
	PayoutService payouts.Service
	BackupService backup.Service
	AuthService   auth.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	memberService := memberservice.New(repo.MemberRepo)
	priceService := priceservice.New(repo.PriceRepo)
	eventService := eventservice.New(repo.EventRepo, repo.MemberRepo, repo.PriceRepo, repo.PayoutRepo, txManager)
	payoutService := payoutservice.New(repo.PayoutRepo, txManager)
	backupService := backupservice.New(repo.MemberRepo, repo.EventRepo, repo.PayoutRepo, txManager)
	authService := authservice.New(cfg.AuthVerifyURL, clients.NewHTTPClient(), &pkgauth.JWTService{})

	return &Services{
		MemberService: memberService,
		PriceService:  priceService,
		EventService:  eventService,
		PayoutService: payoutService,
		BackupService: backupService,
		AuthService:   authService,
	}
}
