package http

import (
	"net/http"

	"equiptrack-backend/internal/service"
)

type ApprovalHandler struct {
	approvals service.ApprovalService
}

func NewApprovalHandler(approvals service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvals: approvals}
}

func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.approvals.Approve(r.Context(), id, adminIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.approvals.Reject(r.Context(), id, adminIDFrom(r), req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}
