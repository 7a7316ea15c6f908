package dto

import "time"

type RecordEventRequestDTO struct {
	EventType      string   `json:"event_type" example:"bizwar_win"`
	ParticipantIDs []string `json:"participant_ids" example:"HJ001,HJ002"`
	Quantity       int64    `json:"quantity" example:"3"`
	PoolAmount     int64    `json:"pool_amount,omitempty" example:"250000"`
}

type RecordEventResponseDTO struct {
	ID               string `json:"id" example:"7cbe65c8-6f10-4b4a-9d60-31fca07ab2b1"`
	CalculatedAmount int64  `json:"calculated_amount" example:"120000"`
}

type EventResponseDTO struct {
	ID          string    `json:"id" example:"7cbe65c8-6f10-4b4a-9d60-31fca07ab2b1"`
	EventType   string    `json:"event_type" example:"bizwar_win"`
	Quantity    int64     `json:"quantity" example:"3"`
	PoolAmount  int64     `json:"pool_amount,omitempty" example:"250000"`
	TotalAmount int64     `json:"total_amount" example:"120000"`
	RecordedAt  time.Time `json:"recorded_at" example:"2024-02-01T18:00:00+01:00"`
}
