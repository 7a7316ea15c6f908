package domain

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID       string    `db:"id"`
	Name     string    `db:"name"`
	JoinedAt time.Time `db:"joined_at"`
}

type PriceEntry struct {
	EventType   string `db:"event_type"`
	UnitPrice   int64  `db:"unit_price"`
	Description string `db:"description"`
	Unit        string `db:"unit"`
	Pooled      bool   `db:"pooled"`
}

type Event struct {
	ID          uuid.UUID `db:"id"`
	EventType   string    `db:"event_type"`
	Quantity    int64     `db:"quantity"`
	PoolAmount  int64     `db:"pool_amount"`
	TotalAmount int64     `db:"total_amount"`
	RecordedAt  time.Time `db:"recorded_at"`
}

// EventShare is one member's credited portion of a recorded event.
type EventShare struct {
	EventID  uuid.UUID `db:"event_id"`
	MemberID string    `db:"member_id"`
	Amount   int64     `db:"amount"`
}

// Payout is a member's pending balance, maintained incrementally as events
// are recorded. Counters holds the accumulated quantity per event type.
type Payout struct {
	MemberID   string           `db:"member_id"`
	MemberName string           `db:"member_name"`
	Total      int64            `db:"total"`
	Counters   map[string]int64 `db:"-"`
}

type CompletedPayout struct {
	ID         uuid.UUID        `db:"id"`
	MemberID   string           `db:"member_id"`
	MemberName string           `db:"member_name"`
	Total      int64            `db:"total"`
	Counters   map[string]int64 `db:"counters"`
	PaidAt     time.Time        `db:"paid_at"`
}
