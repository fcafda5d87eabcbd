package http

import (
	"encoding/json"
	"net/http"

	"github.com/zentask/zentask-server/internal/logger"
	"github.com/zentask/zentask-server/internal/utils"
	"github.com/zentask/zentask-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	if _, err := utils.WriteJSON(w, models.AuthResponse{Token: token.String(), User: registeredUser}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	if _, err := utils.WriteJSON(w, models.AuthResponse{Token: token.String(), User: foundUser}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principalID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.UserByID(ctx, principalID)
	if err != nil {
		log.Err(err).Int64("user_id", principalID).Msg("current user lookup failed")
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}
