package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ascend/internal/domain"
)

// AssessmentRepository es el store que persiste evaluaciones completadas.
// El engine nunca toca la base; este contrato es del caller.
type AssessmentRepository interface {
	Save(ctx context.Context, assessment domain.Assessment) error
	GetByID(ctx context.Context, id string) (domain.Assessment, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Assessment, error)
	LatestByUser(ctx context.Context, userID string) (domain.Assessment, error)
}

// PgAssessmentRepository implementa AssessmentRepository usando pgxpool.
// Items and analysis live in JSONB columns; the relational part is only
// what listing and lookup need.
type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Save(ctx context.Context, assessment domain.Assessment) error {
	items, err := json.Marshal(assessment.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	analysis, err := json.Marshal(assessment.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	const query = `
		INSERT INTO assessments (id, user_id, ascension_score, items, analysis, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.Analysis.AscensionScore,
		items,
		analysis,
		assessment.CreatedAt,
	)
	return err
}

const assessmentColumns = `id, user_id, items, analysis, created_at`

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id string) (domain.Assessment, error) {
	const query = `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1`
	return scanAssessment(r.pool.QueryRow(ctx, query, id))
}

func (r *PgAssessmentRepository) LatestByUser(ctx context.Context, userID string) (domain.Assessment, error) {
	const query = `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanAssessment(r.pool.QueryRow(ctx, query, userID))
}

func (r *PgAssessmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Assessment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	const query = `
		SELECT ` + assessmentColumns + `
		FROM assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assessments, nil
}

func scanAssessment(row rowScanner) (domain.Assessment, error) {
	var (
		a        domain.Assessment
		items    []byte
		analysis []byte
	)
	if err := row.Scan(&a.ID, &a.UserID, &items, &analysis, &a.CreatedAt); err != nil {
		return domain.Assessment{}, err
	}
	if err := json.Unmarshal(items, &a.Items); err != nil {
		return domain.Assessment{}, fmt.Errorf("unmarshal items: %w", err)
	}
	if err := json.Unmarshal(analysis, &a.Analysis); err != nil {
		return domain.Assessment{}, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return a, nil
}
