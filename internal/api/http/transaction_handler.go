package http

import (
	"net/http"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/service"
)

type TransactionHandler struct {
	transactions service.TransactionService
}

func NewTransactionHandler(transactions service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type createBorrowRequest struct {
	EquipmentRFID      string     `json:"equipment_rfid"`
	BorrowerRFID       string     `json:"borrower_rfid"`
	Quantity           int32      `json:"quantity"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
}

func (h *TransactionHandler) CreateBorrow(w http.ResponseWriter, r *http.Request) {
	var req createBorrowRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactions.CreateBorrow(r.Context(), req.EquipmentRFID, req.BorrowerRFID, req.Quantity, req.ExpectedReturnDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

type recordReturnRequest struct {
	Condition string `json:"condition"`
}

func (h *TransactionHandler) RecordReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req recordReturnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactions.RecordReturn(r.Context(), id, domain.ReturnCondition(req.Condition))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	tx, err := h.transactions.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	borrower := r.URL.Query().Get("borrower_rfid")

	var (
		items []domain.Transaction
		total int32
		err   error
	)
	if borrower != "" {
		items, total, err = h.transactions.ListByBorrower(r.Context(), borrower, status, page, pageSize)
	} else {
		items, total, err = h.transactions.ListTransactions(r.Context(), status, page, pageSize)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Transactions []domain.Transaction `json:"transactions"`
		Meta         listMeta             `json:"meta"`
	}{items, listMeta{Page: page, PageSize: pageSize, Total: total}})
}

func (h *TransactionHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	items, err := h.transactions.ListOverdue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Transactions []domain.Transaction `json:"transactions"`
	}{items})
}
