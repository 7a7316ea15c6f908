package backup

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/backupservice"
	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type Service interface {
	Export(ctx context.Context) (*backupservice.Snapshot, error)
	Restore(ctx context.Context, snapshot *backupservice.Snapshot) error
}

type BackupHandler struct {
	backupService Service
}

func New(backupService Service) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// Export godoc
//
//	@Summary	Export the full state as a backup snapshot
//	@Tags		Backup
//	@Produce	json
//	@Success	200	{object}	dto.BackupDTO	"Snapshot"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/backup [get]
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.backupService.Export(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to export state")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(snapshot))
}

// Restore godoc
//
//	@Summary		Restore state from a backup snapshot
//	@Description	Each collection present in the snapshot replaces the stored one; absent collections are kept.
//	@Tags			Backup
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BackupDTO	true	"Snapshot"
//	@Success		200		{object}	utils.Response	"State restored"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/backup [post]
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req dto.BackupDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.backupService.Restore(r.Context(), fromDTO(&req)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to restore state")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "state restored"})
}

func toDTO(snapshot *backupservice.Snapshot) dto.BackupDTO {
	out := dto.BackupDTO{
		Members:    make([]dto.MemberResponseDTO, len(snapshot.Members)),
		Payouts:    make([]dto.PayoutResponseDTO, len(snapshot.Payouts)),
		Stats:      make([]dto.CompletedPayoutResponseDTO, len(snapshot.Stats)),
		ExportDate: snapshot.ExportDate,
	}
	for i, member := range snapshot.Members {
		out.Members[i] = dto.MemberResponseDTO{ID: member.ID, Name: member.Name, JoinedAt: member.JoinedAt}
	}
	for i, payout := range snapshot.Payouts {
		out.Payouts[i] = dto.PayoutResponseDTO{
			MemberID:   payout.MemberID,
			MemberName: payout.MemberName,
			Counters:   payout.Counters,
			Total:      payout.Total,
		}
	}
	for i, completed := range snapshot.Stats {
		out.Stats[i] = dto.CompletedPayoutResponseDTO{
			ID:         completed.ID.String(),
			MemberID:   completed.MemberID,
			MemberName: completed.MemberName,
			Counters:   completed.Counters,
			Total:      completed.Total,
			PaidAt:     completed.PaidAt,
		}
	}
	return out
}

func fromDTO(req *dto.BackupDTO) *backupservice.Snapshot {
	snapshot := &backupservice.Snapshot{ExportDate: req.ExportDate}

	if req.Members != nil {
		snapshot.Members = make([]domain.Member, len(req.Members))
		for i, member := range req.Members {
			snapshot.Members[i] = domain.Member{ID: member.ID, Name: member.Name, JoinedAt: member.JoinedAt}
		}
	}
	if req.Payouts != nil {
		snapshot.Payouts = make([]domain.Payout, len(req.Payouts))
		for i, payout := range req.Payouts {
			snapshot.Payouts[i] = domain.Payout{
				MemberID:   payout.MemberID,
				MemberName: payout.MemberName,
				Counters:   payout.Counters,
				Total:      payout.Total,
			}
		}
	}
	if req.Stats != nil {
		snapshot.Stats = make([]domain.CompletedPayout, len(req.Stats))
		for i, completed := range req.Stats {
			id, err := uuid.Parse(completed.ID)
			if err != nil {
				id = uuid.New()
			}
			snapshot.Stats[i] = domain.CompletedPayout{
				ID:         id,
				MemberID:   completed.MemberID,
				MemberName: completed.MemberName,
				Counters:   completed.Counters,
				Total:      completed.Total,
				PaidAt:     completed.PaidAt,
			}
		}
	}
	return snapshot
}
