package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/memberservice"
	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type Service interface {
	Add(ctx context.Context, id, name string) (*domain.Member, error)
	Update(ctx context.Context, id, newName string) (*domain.Member, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Member, error)
}

type MembersHandler struct {
	memberService Service
}

func New(memberService Service) *MembersHandler {
	return &MembersHandler{
		memberService: memberService,
	}
}

// Add godoc
//
//	@Summary		Register a clan member
//	@Description	Register a member under an externally assigned clan tag. The tag must be unused.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddMemberRequestDTO	true	"Member payload"
//	@Success		201		{object}	dto.MemberResponseDTO	"Member registered"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		409		{object}	utils.Response			"Member id already taken"
//	@Failure		422		{object}	utils.Response			"Malformed member id"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/members [post]
func (h *MembersHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	member, err := h.memberService.Add(r.Context(), req.ID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, memberservice.ErrInvalidMemberID):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toResponse(member))
}

// Update godoc
//
//	@Summary		Rename a member
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Member id"
//	@Param			request	body		dto.UpdateMemberRequestDTO	true	"New name"
//	@Success		200		{object}	dto.MemberResponseDTO		"Member renamed"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Member not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/members/{id} [put]
func (h *MembersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	member, err := h.memberService.Update(r.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponse(member))
}

// Remove godoc
//
//	@Summary		Delete a member
//	@Description	Deletion is refused while ledger rows or a pending payout still reference the member.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string			true	"Member id"
//	@Success		200	{object}	utils.Response	"Member deleted"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		409	{object}	utils.Response	"Member still referenced"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{id} [delete]
func (h *MembersHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.memberService.Remove(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, memberservice.ErrMemberHasEvents):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "member deleted"})
}

// List godoc
//
//	@Summary	List members in joining order
//	@Tags		Members
//	@Produce	json
//	@Success	200	{array}		dto.MemberResponseDTO	"Members"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/members [get]
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch members")
		return
	}

	response := make([]dto.MemberResponseDTO, len(members))
	for i, member := range members {
		response[i] = toResponse(&member)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponse(member *domain.Member) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:       member.ID,
		Name:     member.Name,
		JoinedAt: member.JoinedAt,
	}
}
