package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/pkg/logger"
)

type SaveResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

// @Summary Liste des documents d'une collection
// @Tags collections
// @Produce json
// @Param collection path string true "Nom de la collection"
// @Success 200 {array} entity.Document
// @Failure 404 {object} ResponseError "Collection inconnue"
// @Failure 500 {object} ResponseError
// @Router  /api/{collection} [get]
func (h *Handler) ListCollection(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "crud")

	collection := r.PathValue("collection")

	docs, err := h.s.ListDocuments(ctx, collection)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownCollection) {
			sendErr(ctx, w, http.StatusNotFound, err, errUnknownColFrText)
			return
		}

		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalFrText)

		return
	}

	sendJSON(ctx, w, http.StatusOK, docs)
}

// @Summary Création ou mise à jour d'un document
// @Description Upsert par le champ id fourni par le client. Les demandes avec un id "TEMP-..." reçoivent un numéro séquentiel.
// @Tags collections
// @Accept json
// @Produce json
// @Param collection path string true "Nom de la collection"
// @Param document body entity.Document true "Document avec champ id"
// @Success 200 {object} SaveResponse
// @Failure 400 {object} ResponseError "id manquant"
// @Failure 403 {object} ResponseError "Second administrateur refusé"
// @Failure 404 {object} ResponseError "Collection inconnue"
// @Failure 500 {object} ResponseError
// @Router  /api/{collection} [post]
func (h *Handler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "crud")

	collection := r.PathValue("collection")

	var doc entity.Document

	err := json.NewDecoder(r.Body).Decode(&doc)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, errInvalidRequestFrText)
		return
	}

	id, err := h.s.SaveDocument(ctx, collection, doc)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnknownCollection):
			sendErr(ctx, w, http.StatusNotFound, err, errUnknownColFrText)
		case errors.Is(err, entity.ErrMissingID):
			sendErr(ctx, w, http.StatusBadRequest, err, errMissingIDFrText)
		case errors.Is(err, entity.ErrAdminExists):
			sendErr(ctx, w, http.StatusForbidden, err, errAdminExistsFrText)
		default:
			sendErr(ctx, w, http.StatusInternalServerError, err, errInternalFrText)
		}

		return
	}

	sendJSON(ctx, w, http.StatusOK, SaveResponse{Success: true, ID: id})
}

// @Summary Suppression d'un document par id
// @Tags collections
// @Produce json
// @Param collection path string true "Nom de la collection"
// @Param id path string true "Identifiant du document"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} ResponseError "Collection inconnue"
// @Failure 500 {object} ResponseError
// @Router  /api/{collection}/{id} [delete]
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "crud")

	collection := r.PathValue("collection")
	id := r.PathValue("id")

	err := h.s.DeleteDocument(ctx, collection, id)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownCollection) {
			sendErr(ctx, w, http.StatusNotFound, err, errUnknownColFrText)
			return
		}

		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalFrText)

		return
	}

	sendJSON(ctx, w, http.StatusOK, DeleteResponse{Success: true})
}
