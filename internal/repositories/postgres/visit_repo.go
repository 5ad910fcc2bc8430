package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type VisitRepository struct {
	pool *pgxpool.Pool
}

func NewVisitRepository(pool *pgxpool.Pool) repositories.VisitRepository {
	return &VisitRepository{pool: pool}
}

func (r *VisitRepository) Create(v models.Visit) error {
	ctx := context.Background()

	query := `
		INSERT INTO atendimentos (id, consulta_id, observacoes, diagnostico)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, v.ID, v.AppointmentID, v.Notes, v.Diagnosis)
	return err
}

func (r *VisitRepository) ListAll() ([]models.Visit, error) {
	ctx := context.Background()

	query := `SELECT id, consulta_id, COALESCE(observacoes, ''), COALESCE(diagnostico, '')
		FROM atendimentos ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Visit{}
	for rows.Next() {
		var v models.Visit
		if err := rows.Scan(&v.ID, &v.AppointmentID, &v.Notes, &v.Diagnosis); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitRepository) FindByID(id int) (*models.Visit, error) {
	ctx := context.Background()

	query := `SELECT id, consulta_id, COALESCE(observacoes, ''), COALESCE(diagnostico, '')
		FROM atendimentos WHERE id = $1`

	var v models.Visit
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.AppointmentID, &v.Notes, &v.Diagnosis)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
