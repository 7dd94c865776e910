package http

import (
	"net/http"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/service"
)

type PenaltyHandler struct {
	penalties     service.PenaltyService
	notifications service.NotificationService
}

func NewPenaltyHandler(penalties service.PenaltyService, notifications service.NotificationService) *PenaltyHandler {
	return &PenaltyHandler{penalties: penalties, notifications: notifications}
}

type createPenaltyRequest struct {
	TransactionID int32  `json:"transaction_id"`
	GuidelineID   *int32 `json:"guideline_id,omitempty"`
	Type          string `json:"penalty_type"`
	AmountCents   int64  `json:"amount_cents"`
	Points        int32  `json:"penalty_points"`
	DaysOverdue   int32  `json:"days_overdue"`
	Description   string `json:"description"`
	Notes         string `json:"notes"`
}

func (h *PenaltyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPenaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	penalty, err := h.penalties.CreatePenalty(r.Context(), &service.CreatePenaltyRequest{
		TransactionID: req.TransactionID,
		GuidelineID:   req.GuidelineID,
		Type:          domain.PenaltyType(req.Type),
		AmountCents:   req.AmountCents,
		Points:        req.Points,
		DaysOverdue:   req.DaysOverdue,
		Description:   req.Description,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, penalty)
}

func (h *PenaltyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	penalty, err := h.penalties.GetPenalty(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, penalty)
}

func (h *PenaltyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	penaltyType := r.URL.Query().Get("penalty_type")

	items, total, err := h.penalties.ListPenalties(r.Context(), status, penaltyType, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Penalties []domain.Penalty `json:"penalties"`
		Meta      listMeta         `json:"meta"`
	}{items, listMeta{Page: page, PageSize: pageSize, Total: total}})
}

func (h *PenaltyHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.penalties.GetStatistics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

type updatePenaltyStatusRequest struct {
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

func (h *PenaltyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updatePenaltyStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	penalty, err := h.penalties.UpdateStatus(r.Context(), id, domain.PenaltyStatus(req.Status), req.PaymentMethod, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, penalty)
}

// AutoCalculate triggers the overdue penalty batch on demand. The nightly
// cron runs the same code path; running both is safe.
func (h *PenaltyHandler) AutoCalculate(w http.ResponseWriter, r *http.Request) {
	created, err := h.penalties.AutoCalculateOverdue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Created int32 `json:"created"`
	}{created})
}

type guidelineRequest struct {
	Type        string `json:"penalty_type"`
	AmountCents int64  `json:"penalty_amount_cents"`
	Points      int32  `json:"penalty_points"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (h *PenaltyHandler) CreateGuideline(w http.ResponseWriter, r *http.Request) {
	var req guidelineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	g, err := h.penalties.CreateGuideline(r.Context(), &domain.PenaltyGuideline{
		Type:        domain.PenaltyType(req.Type),
		AmountCents: req.AmountCents,
		Points:      req.Points,
		Status:      domain.GuidelineStatus(req.Status),
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, g)
}

func (h *PenaltyHandler) UpdateGuideline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req guidelineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	g, err := h.penalties.UpdateGuideline(r.Context(), &domain.PenaltyGuideline{
		ID:          id,
		Type:        domain.PenaltyType(req.Type),
		AmountCents: req.AmountCents,
		Points:      req.Points,
		Status:      domain.GuidelineStatus(req.Status),
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, g)
}

func (h *PenaltyHandler) ArchiveGuideline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.penalties.ArchiveGuideline(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PenaltyHandler) ListGuidelines(w http.ResponseWriter, r *http.Request) {
	items, err := h.penalties.ListGuidelines(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Guidelines []domain.PenaltyGuideline `json:"guidelines"`
	}{items})
}

func (h *PenaltyHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	items, total, err := h.notifications.List(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Notifications []domain.Notification `json:"notifications"`
		Meta          listMeta              `json:"meta"`
	}{items, listMeta{Page: page, PageSize: pageSize, Total: total}})
}

func (h *PenaltyHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.notifications.MarkAsRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
