package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/pkg/logger"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	User    entity.Document `json:"user"`
}

// @Summary Authentification d'un utilisateur
// @Description Vérifie les identifiants; trois échecs consécutifs bloquent le compte 15 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Identifiants"
// @Success 200 {object} LoginResponse "Utilisateur sans champ password"
// @Failure 400 {object} ResponseError "Champs manquants"
// @Failure 401 {object} LoginError "Identifiants incorrects"
// @Failure 403 {object} LoginError "Compte bloqué"
// @Failure 500 {object} ResponseError
// @Router  /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errInvalidRequestFrText)
		return
	}

	if req.Username == "" || req.Password == "" {
		sendErr(ctx, w, http.StatusBadRequest, entity.ErrMissingCredential, errMissingCredFrText)
		return
	}

	ctx = logger.SetUsername(ctx, req.Username)

	user, err := h.s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		var blocked *entity.BlockedError
		if errors.As(err, &blocked) {
			msg := errBlockedFrText
			if blocked.Triggered {
				msg = errBlockedFreshFrText
			}

			sendJSON(ctx, w, http.StatusForbidden, LoginError{
				Error:         msg,
				Blocked:       true,
				BlockedUntil:  blocked.BlockedUntil.UnixMilli(),
				RemainingTime: blocked.Remaining.Milliseconds(),
			})

			return
		}

		var invalid *entity.InvalidCredentialsError
		if errors.As(err, &invalid) {
			sendJSON(ctx, w, http.StatusUnauthorized, LoginError{
				Error:             invalidCredFrText(invalid.RemainingAttempts),
				RemainingAttempts: invalid.RemainingAttempts,
			})

			return
		}

		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalFrText)

		return
	}

	sendJSON(ctx, w, http.StatusOK, LoginResponse{Success: true, User: user})
}

// @Summary État de blocage d'un utilisateur
// @Description Lecture seule, sans effet sur le compteur de tentatives.
// @Tags auth
// @Produce json
// @Param username path string true "Nom d'utilisateur"
// @Success 200 {object} entity.LoginStatus
// @Failure 500 {object} ResponseError
// @Router  /api/auth/status/{username} [get]
func (h *Handler) LoginStatus(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	username := r.PathValue("username")
	ctx = logger.SetUsername(ctx, username)

	status, err := h.s.LoginStatus(ctx, username)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalFrText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, status)
}
