package dto

import "time"

type PayoutResponseDTO struct {
	MemberID   string           `json:"member_id" example:"HJ001"`
	MemberName string           `json:"member_name" example:"Malachi"`
	Counters   map[string]int64 `json:"counters"`
	Total      int64            `json:"total" example:"185000"`
}

type CompletedPayoutResponseDTO struct {
	ID         string           `json:"id" example:"b7d0cf1e-93f5-43c2-8d2f-cb2f5f6b6a01"`
	MemberID   string           `json:"member_id" example:"HJ001"`
	MemberName string           `json:"member_name" example:"Malachi"`
	Counters   map[string]int64 `json:"counters"`
	Total      int64            `json:"total" example:"185000"`
	PaidAt     time.Time        `json:"paid_at" example:"2024-02-01T18:00:00+01:00"`
}

type CompleteAllResponseDTO struct {
	Completed int `json:"completed" example:"4"`
}
