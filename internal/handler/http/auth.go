package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.CredentialService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+result.Token)
	if _, err := utils.WriteJSON(w, result, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.CredentialService.Authenticate(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+result.Token)
	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	profile, err := h.services.CredentialService.FetchProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
