package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, rfid_tag, name, category_id, quantity, size_category, importance_level, borrow_period_days, created_on, updated_on`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (rfid_tag, name, category_id, quantity, size_category, importance_level, borrow_period_days, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		eq.RFIDTag, eq.Name, eq.CategoryID, eq.Quantity, eq.SizeCategory,
		eq.ImportanceLevel, eq.BorrowPeriodDays, now, now).Scan(&eq.ID)
}

func (r *equipmentRepository) scanOne(row *sql.Row) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	err := row.Scan(&eq.ID, &eq.RFIDTag, &eq.Name, &eq.CategoryID, &eq.Quantity,
		&eq.SizeCategory, &eq.ImportanceLevel, &eq.BorrowPeriodDays, &eq.CreatedOn, &eq.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *equipmentRepository) GetByRFID(ctx context.Context, rfidTag string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE rfid_tag = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, rfidTag))
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, category_id=$2, quantity=$3, size_category=$4, importance_level=$5, borrow_period_days=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.CategoryID, eq.Quantity, eq.SizeCategory, eq.ImportanceLevel,
		eq.BorrowPeriodDays, time.Now(), eq.ID)
	return err
}

func (r *equipmentRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM equipment`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.RFIDTag, &eq.Name, &eq.CategoryID, &eq.Quantity,
			&eq.SizeCategory, &eq.ImportanceLevel, &eq.BorrowPeriodDays, &eq.CreatedOn, &eq.UpdatedOn); err != nil {
			return nil, 0, err
		}
		items = append(items, eq)
	}
	return items, count, rows.Err()
}
