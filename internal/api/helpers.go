package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const (
	errInternalFrText       = "Erreur interne du serveur"
	errBlockedFrText        = "Compte temporairement bloqué"
	errBlockedFreshFrText   = "Trop de tentatives échouées. Accès bloqué pour 15 minutes."
	errMissingCredFrText    = "Nom d'utilisateur et mot de passe requis"
	errMissingIDFrText      = "Document doit avoir un id"
	errUnknownColFrText     = "Collection inconnue"
	errAdminExistsFrText    = "Un administrateur existe déjà dans le système. Vous ne pouvez pas créer un second administrateur."
	errInvalidRequestFrText = "Requête invalide"
)

type ResponseError struct {
	Error string `json:"error"`
}

// LoginError carries the throttling fields alongside the message; the shape
// is identical for a pre-existing block and a freshly triggered one.
type LoginError struct {
	Error             string `json:"error"`
	Blocked           bool   `json:"blocked,omitempty"`
	BlockedUntil      int64  `json:"blockedUntil,omitempty"`
	RemainingTime     int64  `json:"remainingTime,omitempty"`
	RemainingAttempts int    `json:"remainingAttempts,omitempty"`
}

func invalidCredFrText(remaining int) string {
	plural := ""
	if remaining > 1 {
		plural = "s"
	}

	return fmt.Sprintf("Identifiants incorrects. Il vous reste %d tentative%s.", remaining, plural)
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, msg, "error", err.Error(), "http_code", code)

	sendJSON(ctx, w, code, ResponseError{Error: msg})
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode response",
			"error", err.Error(),
			"http_code", code)
	}
}
