package api

import (
	"context"
	"net/http"
	"time"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/pkg/logger"
)

type Service interface {
	Authenticate(ctx context.Context, username, password string) (entity.Document, error)
	LoginStatus(ctx context.Context, username string) (entity.LoginStatus, error)
	ListDocuments(ctx context.Context, collection string) ([]entity.Document, error)
	SaveDocument(ctx context.Context, collection string, doc entity.Document) (string, error)
	DeleteDocument(ctx context.Context, collection, id string) error
	Stats(ctx context.Context) (map[string]int, error)
}

type Handler struct {
	s            Service
	databaseName string
}

func NewHandler(s Service, databaseName string) *Handler {
	return &Handler{
		s:            s,
		databaseName: databaseName,
	}
}

// @Summary État du serveur
// @Tags system
// @Produce plain
// @Success 200 {string} string "Serveur opérationnel"
// @Router  /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Serveur opérationnel\n"))
}

type StatusResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// @Summary État de la connexion à la base
// @Tags system
// @Produce json
// @Success 200 {object} StatusResponse
// @Router  /api/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	sendJSON(r.Context(), w, http.StatusOK, StatusResponse{
		Status:    "connected",
		Database:  h.databaseName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary Nombre de documents par collection
// @Tags system
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} ResponseError
// @Router  /api/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "stats")

	stats, err := h.s.Stats(ctx)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalFrText)
		return
	}

	sendJSON(ctx, w, http.StatusOK, stats)
}
