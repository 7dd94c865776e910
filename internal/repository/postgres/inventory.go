package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/repository"
)

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateForEquipment(ctx context.Context, equipmentID, quantity, minimumStock int32) error {
	query := `INSERT INTO inventory_records (equipment_id, available_quantity, borrowed_quantity, damaged_quantity, maintenance_quantity, minimum_stock_level, updated_on)
	          VALUES ($1, $2, 0, 0, 0, $3, $4)
	          ON CONFLICT (equipment_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, equipmentID, quantity, minimumStock, time.Now())
	return err
}

func (r *inventoryRepository) GetByEquipmentID(ctx context.Context, equipmentID int32) (*domain.InventoryRecord, error) {
	rec := &domain.InventoryRecord{}
	query := `SELECT i.equipment_id, e.rfid_tag, i.available_quantity, i.borrowed_quantity, i.damaged_quantity, i.maintenance_quantity, i.minimum_stock_level, i.updated_on
	          FROM inventory_records i
	          JOIN equipment e ON e.id = i.equipment_id
	          WHERE i.equipment_id = $1`
	err := r.db.QueryRowContext(ctx, query, equipmentID).Scan(
		&rec.EquipmentID, &rec.RFIDTag, &rec.AvailableQuantity, &rec.BorrowedQuantity,
		&rec.DamagedQuantity, &rec.MaintenanceQuantity, &rec.MinimumStockLevel, &rec.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Recompute()
	return rec, nil
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	query := `SELECT i.equipment_id, e.rfid_tag, i.available_quantity, i.borrowed_quantity, i.damaged_quantity, i.maintenance_quantity, i.minimum_stock_level, i.updated_on
	          FROM inventory_records i
	          JOIN equipment e ON e.id = i.equipment_id
	          ORDER BY e.name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.InventoryRecord
	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(&rec.EquipmentID, &rec.RFIDTag, &rec.AvailableQuantity, &rec.BorrowedQuantity,
			&rec.DamagedQuantity, &rec.MaintenanceQuantity, &rec.MinimumStockLevel, &rec.UpdatedOn); err != nil {
			return nil, err
		}
		rec.Recompute()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// move executes a guarded two-counter move in one statement. The WHERE guard
// on the source counter makes the whole move atomic: zero rows affected
// means the source did not hold qty units and nothing changed.
func (r *inventoryRepository) move(ctx context.Context, equipmentID, qty int32, fromCol, toCol string, onFail error) error {
	if qty <= 0 {
		return domain.NewValidationError("quantity", "must be positive")
	}
	query := `UPDATE inventory_records
	          SET ` + fromCol + ` = ` + fromCol + ` - $1,
	              ` + toCol + ` = ` + toCol + ` + $1,
	              updated_on = $2
	          WHERE equipment_id = $3 AND ` + fromCol + ` >= $1`
	res, err := r.db.ExecContext(ctx, query, qty, time.Now(), equipmentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return onFail
	}
	return nil
}

func (r *inventoryRepository) Reserve(ctx context.Context, equipmentID, qty int32) error {
	return r.move(ctx, equipmentID, qty, "available_quantity", "borrowed_quantity", domain.ErrInsufficientStock)
}

func (r *inventoryRepository) Release(ctx context.Context, equipmentID, qty int32) error {
	return r.move(ctx, equipmentID, qty, "borrowed_quantity", "available_quantity", domain.ErrCounterUnderflow)
}

func (r *inventoryRepository) MarkDamaged(ctx context.Context, equipmentID, qty int32) error {
	return r.move(ctx, equipmentID, qty, "borrowed_quantity", "damaged_quantity", domain.ErrCounterUnderflow)
}

func (r *inventoryRepository) MarkMaintenanceFromAvailable(ctx context.Context, equipmentID, qty int32) error {
	return r.move(ctx, equipmentID, qty, "available_quantity", "maintenance_quantity", domain.ErrCounterUnderflow)
}

func (r *inventoryRepository) CompleteRepair(ctx context.Context, equipmentID, qty int32, fromDamaged bool) error {
	from := "maintenance_quantity"
	if fromDamaged {
		from = "damaged_quantity"
	}
	return r.move(ctx, equipmentID, qty, from, "available_quantity", domain.ErrCounterUnderflow)
}

func (r *inventoryRepository) AdjustTotal(ctx context.Context, equipmentID, delta int32) error {
	if delta == 0 {
		return nil
	}
	// Negative adjustments may only remove idle units.
	query := `UPDATE inventory_records
	          SET available_quantity = available_quantity + $1,
	              updated_on = $2
	          WHERE equipment_id = $3 AND available_quantity + $1 >= 0`
	res, err := r.db.ExecContext(ctx, query, delta, time.Now(), equipmentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCounterUnderflow
	}
	return nil
}
