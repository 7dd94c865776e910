package http

import (
	"errors"
	"net/http"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/service"
)

type EquipmentHandler struct {
	catalog service.CatalogService
}

func NewEquipmentHandler(catalog service.CatalogService) *EquipmentHandler {
	return &EquipmentHandler{catalog: catalog}
}

type createEquipmentRequest struct {
	RFIDTag          string `json:"rfid_tag"`
	Name             string `json:"name"`
	CategoryID       int32  `json:"category_id"`
	Quantity         int32  `json:"quantity"`
	SizeCategory     string `json:"size_category"`
	ImportanceLevel  string `json:"importance_level"`
	BorrowPeriodDays int32  `json:"borrow_period_days"`
	MinimumStock     int32  `json:"minimum_stock_level"`
}

type equipmentResponse struct {
	Equipment *domain.Equipment `json:"equipment"`
	Warning   string            `json:"warning,omitempty"`
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	eq := &domain.Equipment{
		RFIDTag:          req.RFIDTag,
		Name:             req.Name,
		CategoryID:       req.CategoryID,
		Quantity:         req.Quantity,
		SizeCategory:     domain.SizeCategory(req.SizeCategory),
		ImportanceLevel:  domain.ImportanceLevel(req.ImportanceLevel),
		BorrowPeriodDays: req.BorrowPeriodDays,
	}

	created, err := h.catalog.CreateEquipment(r.Context(), eq, req.MinimumStock)
	if err != nil {
		// Equipment creation survives a failed inventory insert: report the
		// created row with a warning instead of failing the request.
		var de *domain.DependencyError
		if errors.As(err, &de) && created != nil {
			writeJSON(w, http.StatusCreated, equipmentResponse{
				Equipment: created,
				Warning:   de.Error(),
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, equipmentResponse{Equipment: created})
}

type updateEquipmentRequest struct {
	Name             string `json:"name"`
	CategoryID       int32  `json:"category_id"`
	Quantity         int32  `json:"quantity"`
	SizeCategory     string `json:"size_category"`
	ImportanceLevel  string `json:"importance_level"`
	BorrowPeriodDays int32  `json:"borrow_period_days"`
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	eq := &domain.Equipment{
		ID:               id,
		Name:             req.Name,
		CategoryID:       req.CategoryID,
		Quantity:         req.Quantity,
		SizeCategory:     domain.SizeCategory(req.SizeCategory),
		ImportanceLevel:  domain.ImportanceLevel(req.ImportanceLevel),
		BorrowPeriodDays: req.BorrowPeriodDays,
	}

	updated, err := h.catalog.UpdateEquipment(r.Context(), eq)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, equipmentResponse{Equipment: updated})
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	eq, err := h.catalog.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, equipmentResponse{Equipment: eq})
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	items, total, err := h.catalog.ListEquipment(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Equipment []domain.Equipment `json:"equipment"`
		Meta      listMeta           `json:"meta"`
	}{items, listMeta{Page: page, PageSize: pageSize, Total: total}})
}
