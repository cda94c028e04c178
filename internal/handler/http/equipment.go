package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/utils"
	"github.com/medinventory/medinv/models"
)

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.EquipmentFilter{
		Kind:   query.Get("kind"),
		Status: models.EquipmentStatus(query.Get("status")),
		Sector: query.Get("sector"),
		Search: query.Get("search"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	result, err := h.services.EquipmentService.List(r.Context(), filter, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	equipment, err := h.services.EquipmentService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, equipment, http.StatusOK)
}

func (h *Handler) createEquipment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var equipment models.Equipment
	if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	created, err := h.services.EquipmentService.Create(r.Context(), equipment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("equipment registered")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEquipment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var equipment models.Equipment
	if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	updated, err := h.services.EquipmentService.Update(r.Context(), id, equipment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) changeEquipmentStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.StatusPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	updated, err := h.services.EquipmentService.ChangeStatus(r.Context(), id, patch.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.EquipmentService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
