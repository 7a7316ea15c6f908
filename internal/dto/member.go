package dto

import "time"

type AddMemberRequestDTO struct {
	ID   string `json:"id" example:"HJ001"`
	Name string `json:"name" example:"Malachi"`
}

type UpdateMemberRequestDTO struct {
	Name string `json:"name" example:"Malachi"`
}

type MemberResponseDTO struct {
	ID       string    `json:"id" example:"HJ001"`
	Name     string    `json:"name" example:"Malachi"`
	JoinedAt time.Time `json:"joined_at" example:"2024-02-01T18:00:00+01:00"`
}
