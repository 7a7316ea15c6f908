package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hexenjaeger/clanledger/internal/dto"
	"github.com/hexenjaeger/clanledger/internal/service/authservice"
	"github.com/hexenjaeger/clanledger/pkg/utils"
)

type Service interface {
	Exchange(ctx context.Context, token string) (*authservice.Session, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateSession godoc
//
//	@Summary		Exchange an external token for a session token
//	@Description	Verifies a Discord OAuth token against the configured verification endpoint and mints a local session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SessionRequestDTO	true	"External token"
//	@Success		200		{object}	dto.SessionResponseDTO	"Session issued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Token rejected"
//	@Failure		404		{object}	utils.Response			"Auth gate disabled"
//	@Failure		502		{object}	utils.Response			"Verification service unreachable"
//	@Router			/api/auth/session [post]
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "token is required")
		return
	}

	session, err := h.authService.Exchange(r.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrAuthDisabled):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, authservice.ErrNotAuthenticated):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrAuthUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		SessionToken: session.Token,
		User:         session.User,
		FullAccess:   session.FullAccess,
	})
}
