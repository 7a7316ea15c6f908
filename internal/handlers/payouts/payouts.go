package payouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/payoutservice"
	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type Service interface {
	GetPending(ctx context.Context, memberID string) (*domain.Payout, error)
	ListPending(ctx context.Context) ([]domain.Payout, error)
	Complete(ctx context.Context, memberID string) (*domain.CompletedPayout, error)
	CompleteAll(ctx context.Context) (int, error)
	History(ctx context.Context) ([]domain.CompletedPayout, error)
}

type PayoutsHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutsHandler {
	return &PayoutsHandler{
		payoutService: payoutService,
	}
}

// ListPending godoc
//
//	@Summary	List all pending payouts
//	@Tags		Payouts
//	@Produce	json
//	@Success	200	{array}		dto.PayoutResponseDTO	"Pending payouts"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/payouts [get]
func (h *PayoutsHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payouts")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(payouts))
	for i, payout := range payouts {
		response[i] = toPendingResponse(&payout)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPending godoc
//
//	@Summary		Get one member's pending payout
//	@Description	Members without accumulated balance answer with a zero-valued payout.
//	@Tags			Payouts
//	@Produce		json
//	@Param			memberId	path		string					true	"Member id"
//	@Success		200			{object}	dto.PayoutResponseDTO	"Pending payout"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/payouts/{memberId} [get]
func (h *PayoutsHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")

	payout, err := h.payoutService.GetPending(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPendingResponse(payout))
}

// Complete godoc
//
//	@Summary		Complete one member's payout
//	@Description	Snapshots the pending balance into the permanent history and clears it. Not reversible.
//	@Tags			Payouts
//	@Produce		json
//	@Param			memberId	path		string							true	"Member id"
//	@Success		200			{object}	dto.CompletedPayoutResponseDTO	"Completed payout"
//	@Failure		404			{object}	utils.Response					"No pending payout"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/payouts/{memberId}/complete [post]
func (h *PayoutsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")

	completed, err := h.payoutService.Complete(r.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrNoPendingPayout):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toCompletedResponse(completed))
}

// CompleteAll godoc
//
//	@Summary	Complete every nonzero pending payout
//	@Tags		Payouts
//	@Produce	json
//	@Success	200	{object}	dto.CompleteAllResponseDTO	"How many payouts were completed"
//	@Failure	500	{object}	utils.Response				"Internal server error"
//	@Router		/api/payouts/complete [post]
func (h *PayoutsHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.payoutService.CompleteAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteAllResponseDTO{Completed: count})
}

// History godoc
//
//	@Summary	Get the completed-payout history, oldest first
//	@Tags		Payouts
//	@Produce	json
//	@Success	200	{array}		dto.CompletedPayoutResponseDTO	"Completed payouts"
//	@Failure	500	{object}	utils.Response					"Internal server error"
//	@Router		/api/payouts/history [get]
func (h *PayoutsHandler) History(w http.ResponseWriter, r *http.Request) {
	completed, err := h.payoutService.History(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payout history")
		return
	}

	response := make([]dto.CompletedPayoutResponseDTO, len(completed))
	for i := range completed {
		response[i] = toCompletedResponse(&completed[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPendingResponse(payout *domain.Payout) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		MemberID:   payout.MemberID,
		MemberName: payout.MemberName,
		Counters:   payout.Counters,
		Total:      payout.Total,
	}
}

func toCompletedResponse(completed *domain.CompletedPayout) dto.CompletedPayoutResponseDTO {
	return dto.CompletedPayoutResponseDTO{
		ID:         completed.ID.String(),
		MemberID:   completed.MemberID,
		MemberName: completed.MemberName,
		Counters:   completed.Counters,
		Total:      completed.Total,
		PaidAt:     completed.PaidAt,
	}
}
