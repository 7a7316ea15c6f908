package prices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/priceservice"
	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, eventType string) (*domain.PriceEntry, error)
	Set(ctx context.Context, entry *domain.PriceEntry) error
	List(ctx context.Context) ([]domain.PriceEntry, error)
}

type PricesHandler struct {
	priceService Service
}

func New(priceService Service) *PricesHandler {
	return &PricesHandler{
		priceService: priceService,
	}
}

// Get godoc
//
//	@Summary		Get the price entry for an event type
//	@Description	Unconfigured event types answer with a zero-priced entry, never an error.
//	@Tags			Prices
//	@Produce		json
//	@Param			eventType	path		string					true	"Event type tag"
//	@Success		200			{object}	dto.PriceResponseDTO	"Price entry"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/prices/{eventType} [get]
func (h *PricesHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventType := chi.URLParam(r, "eventType")

	entry, err := h.priceService.Get(r.Context(), eventType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(entry))
}

// Set godoc
//
//	@Summary	Create or update a price entry
//	@Tags		Prices
//	@Accept		json
//	@Produce	json
//	@Param		eventType	path		string					true	"Event type tag"
//	@Param		request		body		dto.SetPriceRequestDTO	true	"Price payload"
//	@Success	200			{object}	dto.PriceResponseDTO	"Stored entry"
//	@Failure	400			{object}	utils.Response			"Invalid request body"
//	@Failure	422			{object}	utils.Response			"Invalid price"
//	@Failure	500			{object}	utils.Response			"Internal server error"
//	@Router		/api/prices/{eventType} [put]
func (h *PricesHandler) Set(w http.ResponseWriter, r *http.Request) {
	eventType := chi.URLParam(r, "eventType")

	var req dto.SetPriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry := &domain.PriceEntry{
		EventType:   eventType,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		Unit:        req.Unit,
		Pooled:      req.Pooled,
	}

	err := h.priceService.Set(r.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, priceservice.ErrEmptyEventType), errors.Is(err, priceservice.ErrNegativePrice):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponse(entry))
}

// List godoc
//
//	@Summary	List all price entries
//	@Tags		Prices
//	@Produce	json
//	@Success	200	{array}		dto.PriceResponseDTO	"Price entries"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/prices [get]
func (h *PricesHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.priceService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch prices")
		return
	}

	response := make([]dto.PriceResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = toResponse(&entry)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponse(entry *domain.PriceEntry) dto.PriceResponseDTO {
	return dto.PriceResponseDTO{
		EventType:   entry.EventType,
		UnitPrice:   entry.UnitPrice,
		Description: entry.Description,
		Unit:        entry.Unit,
		Pooled:      entry.Pooled,
	}
}
