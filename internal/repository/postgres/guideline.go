package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"equiptrack-backend/internal/domain"
	"equiptrack-backend/internal/repository"
)

type guidelineRepository struct {
	db *sql.DB
}

func NewGuidelineRepository(db *sql.DB) repository.GuidelineRepository {
	return &guidelineRepository{db: db}
}

const guidelineColumns = `id, penalty_type, amount_cents, penalty_points, status, description, created_on, updated_on`

func (r *guidelineRepository) Create(ctx context.Context, g *domain.PenaltyGuideline) error {
	query := `INSERT INTO penalty_guidelines (penalty_type, amount_cents, penalty_points, status, description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		g.Type, g.AmountCents, g.Points, g.Status, g.Description, now, now).Scan(&g.ID)
}

func scanGuideline(scan func(dest ...any) error) (*domain.PenaltyGuideline, error) {
	g := &domain.PenaltyGuideline{}
	var description sql.NullString
	err := scan(&g.ID, &g.Type, &g.AmountCents, &g.Points, &g.Status, &description, &g.CreatedOn, &g.UpdatedOn)
	if err != nil {
		return nil, err
	}
	g.Description = description.String
	return g, nil
}

func (r *guidelineRepository) GetByID(ctx context.Context, id int32) (*domain.PenaltyGuideline, error) {
	query := `SELECT ` + guidelineColumns + ` FROM penalty_guidelines WHERE id = $1`
	g, err := scanGuideline(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return g, err
}

func (r *guidelineRepository) GetActiveByType(ctx context.Context, t domain.PenaltyType) (*domain.PenaltyGuideline, error) {
	query := `SELECT ` + guidelineColumns + ` FROM penalty_guidelines
	          WHERE penalty_type = $1 AND status = 'active'
	          ORDER BY updated_on DESC LIMIT 1`
	g, err := scanGuideline(r.db.QueryRowContext(ctx, query, t).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return g, err
}

func (r *guidelineRepository) Update(ctx context.Context, g *domain.PenaltyGuideline) error {
	query := `UPDATE penalty_guidelines SET penalty_type=$1, amount_cents=$2, penalty_points=$3, status=$4, description=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query,
		g.Type, g.AmountCents, g.Points, g.Status, g.Description, time.Now(), g.ID)
	return err
}

func (r *guidelineRepository) List(ctx context.Context, status string) ([]domain.PenaltyGuideline, error) {
	query := `SELECT ` + guidelineColumns + ` FROM penalty_guidelines`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY penalty_type, updated_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guidelines []domain.PenaltyGuideline
	for rows.Next() {
		g, err := scanGuideline(rows.Scan)
		if err != nil {
			return nil, err
		}
		guidelines = append(guidelines, *g)
	}
	return guidelines, rows.Err()
}
