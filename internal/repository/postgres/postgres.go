package postgres

import (
	"database/sql"

	"equiptrack-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.InventoryRepository
	repository.TransactionRepository
	repository.PenaltyRepository
	repository.GuidelineRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		EquipmentRepository:    NewEquipmentRepository(db),
		InventoryRepository:    NewInventoryRepository(db),
		TransactionRepository:  NewTransactionRepository(db),
		PenaltyRepository:      NewPenaltyRepository(db),
		GuidelineRepository:    NewGuidelineRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
