package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hexenjaeger/clanledger/internal/domain"
	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/eventservice"
	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type Service interface {
	Record(ctx context.Context, req eventservice.RecordRequest) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Event, error)
}

type EventsHandler struct {
	eventService Service
}

func New(eventService Service) *EventsHandler {
	return &EventsHandler{
		eventService: eventService,
	}
}

// Record godoc
//
//	@Summary		Record a cooperative event
//	@Description	Credits every participant and returns the aggregate calculated amount for confirmation.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordEventRequestDTO	true	"Event submission"
//	@Success		200		{object}	dto.RecordEventResponseDTO	"Aggregate credited amount"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		422		{object}	utils.Response				"Rejected submission"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/events [post]
func (h *EventsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EventType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "event_type is required")
		return
	}

	event, err := h.eventService.Record(r.Context(), eventservice.RecordRequest{
		EventType:      req.EventType,
		ParticipantIDs: req.ParticipantIDs,
		Quantity:       req.Quantity,
		PoolAmount:     req.PoolAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrNoParticipants),
			errors.Is(err, eventservice.ErrUnknownParticipant),
			errors.Is(err, eventservice.ErrInvalidQuantity),
			errors.Is(err, eventservice.ErrInvalidPoolAmount),
			errors.Is(err, eventservice.ErrUnpricedEventType):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RecordEventResponseDTO{
		ID:               event.ID.String(),
		CalculatedAmount: event.TotalAmount,
	})
}

// List godoc
//
//	@Summary	List recorded events, newest first
//	@Tags		Events
//	@Produce	json
//	@Param		member_id	query		string	false	"Only events crediting this member"
//	@Success	200			{array}		dto.EventResponseDTO	"Events"
//	@Failure	500			{object}	utils.Response			"Internal server error"
//	@Router		/api/events [get]
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		events []domain.Event
		err    error
	)

	if memberID := r.URL.Query().Get("member_id"); memberID != "" {
		events, err = h.eventService.ListByMember(r.Context(), memberID)
	} else {
		events, err = h.eventService.List(r.Context())
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	response := make([]dto.EventResponseDTO, len(events))
	for i, event := range events {
		response[i] = dto.EventResponseDTO{
			ID:          event.ID.String(),
			EventType:   event.EventType,
			Quantity:    event.Quantity,
			PoolAmount:  event.PoolAmount,
			TotalAmount: event.TotalAmount,
			RecordedAt:  event.RecordedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
