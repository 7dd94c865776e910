package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/repository"
)

type penaltyRepository struct {
	db *sql.DB
}

func NewPenaltyRepository(db *sql.DB) repository.PenaltyRepository {
	return &penaltyRepository{db: db}
}

const penaltyColumns = `id, transaction_id, guideline_id, borrower_rfid, equipment_id, equipment_name, penalty_type, amount_cents, penalty_points, days_overdue, daily_rate_cents, violation_date, status, payment_method, description, notes, created_on, updated_on`

// Create relies on the unique (transaction_id, penalty_type) constraint so
// concurrent batch reruns cannot insert duplicates. The conflict case
// reports insertion=false rather than an error.
func (r *penaltyRepository) Create(ctx context.Context, p *domain.Penalty) (bool, error) {
	query := `INSERT INTO penalties (transaction_id, guideline_id, borrower_rfid, equipment_id, equipment_name, penalty_type, amount_cents, penalty_points, days_overdue, daily_rate_cents, violation_date, status, payment_method, description, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          ON CONFLICT (transaction_id, penalty_type) DO NOTHING
	          RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		p.TransactionID, p.GuidelineID, p.BorrowerRFID, p.EquipmentID, p.EquipmentName,
		p.Type, p.AmountCents, p.Points, p.DaysOverdue, p.DailyRateCents, p.ViolationDate,
		p.Status, nullString(p.PaymentMethod), p.Description, p.Notes, now, now).Scan(&p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanPenalty(scan func(dest ...any) error) (*domain.Penalty, error) {
	p := &domain.Penalty{}
	var paymentMethod, description, notes sql.NullString
	err := scan(&p.ID, &p.TransactionID, &p.GuidelineID, &p.BorrowerRFID, &p.EquipmentID,
		&p.EquipmentName, &p.Type, &p.AmountCents, &p.Points, &p.DaysOverdue, &p.DailyRateCents,
		&p.ViolationDate, &p.Status, &paymentMethod, &description, &notes, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	p.PaymentMethod = paymentMethod.String
	p.Description = description.String
	p.Notes = notes.String
	return p, nil
}

func (r *penaltyRepository) GetByID(ctx context.Context, id int32) (*domain.Penalty, error) {
	query := `SELECT ` + penaltyColumns + ` FROM penalties WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPenalty(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *penaltyRepository) UpdateStatus(ctx context.Context, p *domain.Penalty) error {
	query := `UPDATE penalties SET status=$1, payment_method=$2, notes=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, p.Status, nullString(p.PaymentMethod), p.Notes, time.Now(), p.ID)
	return err
}

func (r *penaltyRepository) List(ctx context.Context, status string, penaltyType string, page, pageSize int32) ([]domain.Penalty, int32, error) {
	where := ""
	var args []interface{}
	if status != "" {
		args = append(args, status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if penaltyType != "" {
		args = append(args, penaltyType)
		if where == "" {
			where = fmt.Sprintf(" WHERE penalty_type = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND penalty_type = $%d", len(args))
		}
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM penalties`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT `+penaltyColumns+` FROM penalties%s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var penalties []domain.Penalty
	for rows.Next() {
		p, err := scanPenalty(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		penalties = append(penalties, *p)
	}
	return penalties, count, rows.Err()
}

func (r *penaltyRepository) GetStatistics(ctx context.Context) (*domain.PenaltyStatistics, error) {
	stats := &domain.PenaltyStatistics{
		CountByStatus: make(map[string]int32),
		CountByType:   make(map[string]int32),
	}

	err := r.db.QueryRowContext(ctx,
		`SELECT count(*), COALESCE(SUM(amount_cents), 0) FROM penalties`).
		Scan(&stats.TotalCount, &stats.TotalOwedCents)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM penalties WHERE status = 'Pending'`).
		Scan(&stats.PendingOwedCents)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM penalties GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.CountByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	typeRows, err := r.db.QueryContext(ctx, `SELECT penalty_type, count(*) FROM penalties GROUP BY penalty_type`)
	if err != nil {
		return nil, err
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var penaltyType string
		var count int32
		if err := typeRows.Scan(&penaltyType, &count); err != nil {
			return nil, err
		}
		stats.CountByType[penaltyType] = count
	}
	return stats, typeRows.Err()
}
