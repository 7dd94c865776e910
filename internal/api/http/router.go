package http

import (
	"github.com/gorilla/mux"

	"equiptrack-backend/internal/security"
	"equiptrack-backend/internal/service"
)

// Handlers bundles the API handlers for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Equipment   *EquipmentHandler
	Inventory   *InventoryHandler
	Transaction *TransactionHandler
	Approval    *ApprovalHandler
	Penalty     *PenaltyHandler
}

func NewHandlers(
	authSvc service.AuthService,
	catalogSvc service.CatalogService,
	inventorySvc service.InventoryService,
	txSvc service.TransactionService,
	approvalSvc service.ApprovalService,
	penaltySvc service.PenaltyService,
	noteSvc service.NotificationService,
) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(authSvc),
		Equipment:   NewEquipmentHandler(catalogSvc),
		Inventory:   NewInventoryHandler(inventorySvc),
		Transaction: NewTransactionHandler(txSvc),
		Approval:    NewApprovalHandler(approvalSvc),
		Penalty:     NewPenaltyHandler(penaltySvc, noteSvc),
	}
}

// NewRouter wires all routes. Kiosk routes (borrow/return and catalog reads)
// are open; admin routes sit behind bearer auth.
func NewRouter(h *Handlers, tokenManager security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	// Kiosk-facing
	api.HandleFunc("/equipment", h.Equipment.List).Methods("GET")
	api.HandleFunc("/equipment/{id:[0-9]+}", h.Equipment.Get).Methods("GET")
	api.HandleFunc("/transactions/borrow", h.Transaction.CreateBorrow).Methods("POST")
	api.HandleFunc("/transactions/{id:[0-9]+}/return", h.Transaction.RecordReturn).Methods("POST")
	api.HandleFunc("/transactions/{id:[0-9]+}", h.Transaction.Get).Methods("GET")
	api.HandleFunc("/transactions", h.Transaction.List).Methods("GET")

	// Admin-only
	admin := api.NewRoute().Subrouter()
	admin.Use(AuthMiddleware(tokenManager))

	admin.HandleFunc("/equipment", h.Equipment.Create).Methods("POST")
	admin.HandleFunc("/equipment/{id:[0-9]+}", h.Equipment.Update).Methods("PUT")

	admin.HandleFunc("/inventory", h.Inventory.List).Methods("GET")
	admin.HandleFunc("/inventory/low-stock", h.Inventory.ListLowStock).Methods("GET")
	admin.HandleFunc("/inventory/{equipmentID:[0-9]+}", h.Inventory.Get).Methods("GET")
	admin.HandleFunc("/inventory/{equipmentID:[0-9]+}/maintenance", h.Inventory.PullForMaintenance).Methods("POST")
	admin.HandleFunc("/inventory/{equipmentID:[0-9]+}/repair-complete", h.Inventory.CompleteRepair).Methods("POST")

	admin.HandleFunc("/transactions/overdue", h.Transaction.ListOverdue).Methods("GET")
	admin.HandleFunc("/transactions/{id:[0-9]+}/approve", h.Approval.Approve).Methods("POST")
	admin.HandleFunc("/transactions/{id:[0-9]+}/reject", h.Approval.Reject).Methods("POST")

	admin.HandleFunc("/penalties", h.Penalty.Create).Methods("POST")
	admin.HandleFunc("/penalties", h.Penalty.List).Methods("GET")
	admin.HandleFunc("/penalties/stats", h.Penalty.Statistics).Methods("GET")
	admin.HandleFunc("/penalties/auto-calculate", h.Penalty.AutoCalculate).Methods("POST")
	admin.HandleFunc("/penalties/{id:[0-9]+}", h.Penalty.Get).Methods("GET")
	admin.HandleFunc("/penalties/{id:[0-9]+}/status", h.Penalty.UpdateStatus).Methods("PATCH")

	admin.HandleFunc("/guidelines", h.Penalty.ListGuidelines).Methods("GET")
	admin.HandleFunc("/guidelines", h.Penalty.CreateGuideline).Methods("POST")
	admin.HandleFunc("/guidelines/{id:[0-9]+}", h.Penalty.UpdateGuideline).Methods("PUT")
	admin.HandleFunc("/guidelines/{id:[0-9]+}/archive", h.Penalty.ArchiveGuideline).Methods("POST")

	admin.HandleFunc("/notifications", h.Penalty.ListNotifications).Methods("GET")
	admin.HandleFunc("/notifications/{id:[0-9]+}/read", h.Penalty.MarkNotificationRead).Methods("POST")

	return r
}
