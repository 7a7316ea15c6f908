package repo

import (
	"github.com/hexenjaeger/clanledger/internal/pg"
	eventrepo "github.com/hexenjaeger/clanledger/internal/repo/event-repo"
	memberrepo "github.com/hexenjaeger/clanledger/internal/repo/member-repo"
	payoutrepo "github.com/hexenjaeger/clanledger/internal/repo/payout-repo"
	pricerepo "github.com/hexenjaeger/clanledger/internal/repo/price-repo"
)

type Repositories struct {
	MemberRepo *memberrepo.Repository
	PriceRepo  *pricerepo.Repository
	EventRepo  *eventrepo.Repository
	PayoutRepo *payoutrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		MemberRepo: memberrepo.New(conn),
		PriceRepo:  pricerepo.New(conn),
		EventRepo:  eventrepo.New(conn),
		PayoutRepo: payoutrepo.New(conn),
	}
}
