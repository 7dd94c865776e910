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

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, reference_number, equipment_id, borrower_rfid, transaction_type, quantity, status, approval_status, expected_return_date, returned_on, condition_after, approved_by, approved_on, rejection_reason, created_on, updated_on`

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (reference_number, equipment_id, borrower_rfid, transaction_type, quantity, status, approval_status, expected_return_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		tx.ReferenceNumber, tx.EquipmentID, tx.BorrowerRFID, tx.Type, tx.Quantity,
		tx.Status, tx.ApprovalStatus, tx.ExpectedReturnDate, now, now).Scan(&tx.ID)
}

func scanTransaction(scan func(dest ...any) error) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	var conditionAfter, rejectionReason sql.NullString
	err := scan(&tx.ID, &tx.ReferenceNumber, &tx.EquipmentID, &tx.BorrowerRFID, &tx.Type,
		&tx.Quantity, &tx.Status, &tx.ApprovalStatus, &tx.ExpectedReturnDate, &tx.ReturnedOn,
		&conditionAfter, &tx.ApprovedBy, &tx.ApprovedOn, &rejectionReason, &tx.CreatedOn, &tx.UpdatedOn)
	if err != nil {
		return nil, err
	}
	tx.ConditionAfter = domain.ReturnCondition(conditionAfter.String)
	tx.RejectionReason = rejectionReason.String
	return tx, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	tx, err := scanTransaction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return tx, err
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `UPDATE transactions SET status=$1, approval_status=$2, returned_on=$3, condition_after=$4, approved_by=$5, approved_on=$6, rejection_reason=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		tx.Status, tx.ApprovalStatus, tx.ReturnedOn, nullString(string(tx.ConditionAfter)),
		tx.ApprovedBy, tx.ApprovedOn, nullString(tx.RejectionReason), time.Now(), tx.ID)
	return err
}

func (r *transactionRepository) MarkReturned(ctx context.Context, tx *domain.Transaction) error {
	query := `UPDATE transactions SET status=$1, returned_on=$2, condition_after=$3, updated_on=$4
	          WHERE id=$5 AND status='Active'`
	res, err := r.db.ExecContext(ctx, query,
		tx.Status, tx.ReturnedOn, nullString(string(tx.ConditionAfter)), time.Now(), tx.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *transactionRepository) DecideApproval(ctx context.Context, tx *domain.Transaction) error {
	query := `UPDATE transactions SET status=$1, approval_status=$2, approved_by=$3, approved_on=$4, rejection_reason=$5, updated_on=$6
	          WHERE id=$7 AND approval_status='Pending'`
	res, err := r.db.ExecContext(ctx, query,
		tx.Status, tx.ApprovalStatus, tx.ApprovedBy, tx.ApprovedOn,
		nullString(tx.RejectionReason), time.Now(), tx.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyDecided
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *transactionRepository) list(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Transaction, int32, error) {
	countQuery := `SELECT count(*) FROM transactions` + where
	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT `+transactionColumns+` FROM transactions%s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		txs = append(txs, *tx)
	}
	return txs, count, rows.Err()
}

func (r *transactionRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	where := ""
	var args []interface{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}
	return r.list(ctx, where, args, page, pageSize)
}

func (r *transactionRepository) ListByBorrower(ctx context.Context, borrowerRFID string, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	where := " WHERE borrower_rfid = $1"
	args := []interface{}{borrowerRFID}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}
	return r.list(ctx, where, args, page, pageSize)
}

func (r *transactionRepository) ListActiveOverdue(ctx context.Context, cutoff time.Time, missingPenaltyType domain.PenaltyType) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumnsPrefixed("t") + `
	          FROM transactions t
	          LEFT JOIN penalties p ON p.transaction_id = t.id AND p.penalty_type = $1
	          WHERE t.transaction_type = 'Borrow'
	            AND t.status = 'Active'
	            AND t.expected_return_date < $2
	            AND p.id IS NULL
	          ORDER BY t.expected_return_date`
	rows, err := r.db.QueryContext(ctx, query, missingPenaltyType, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, rows.Err()
}

func transactionColumnsPrefixed(alias string) string {
	return alias + `.id, ` + alias + `.reference_number, ` + alias + `.equipment_id, ` + alias + `.borrower_rfid, ` +
		alias + `.transaction_type, ` + alias + `.quantity, ` + alias + `.status, ` + alias + `.approval_status, ` +
		alias + `.expected_return_date, ` + alias + `.returned_on, ` + alias + `.condition_after, ` +
		alias + `.approved_by, ` + alias + `.approved_on, ` + alias + `.rejection_reason, ` +
		alias + `.created_on, ` + alias + `.updated_on`
}
