package http

import (
	"net/http"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/service"
)

type InventoryHandler struct {
	inventory service.InventoryService
}

func NewInventoryHandler(inventory service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := pathID(r, "equipmentID")
	if err != nil {
		writeError(w, err)
		return
	}

	record, err := h.inventory.GetRecord(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListRecords(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Records []domain.InventoryRecord `json:"records"`
	}{records})
}

func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventory.ListLowStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Records []domain.InventoryRecord `json:"records"`
	}{records})
}

type quantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *InventoryHandler) PullForMaintenance(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := pathID(r, "equipmentID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req quantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.inventory.PullForMaintenance(r.Context(), equipmentID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}

	record, err := h.inventory.GetRecord(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type completeRepairRequest struct {
	Quantity    int32 `json:"quantity"`
	FromDamaged bool  `json:"from_damaged"`
}

func (h *InventoryHandler) CompleteRepair(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := pathID(r, "equipmentID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req completeRepairRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.inventory.CompleteRepair(r.Context(), equipmentID, req.Quantity, req.FromDamaged); err != nil {
		writeError(w, err)
		return
	}

	record, err := h.inventory.GetRecord(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
