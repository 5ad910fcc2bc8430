package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type VeterinarianRepository struct {
	pool *pgxpool.Pool
}

func NewVeterinarianRepository(pool *pgxpool.Pool) repositories.VeterinarianRepository {
	return &VeterinarianRepository{pool: pool}
}

func (r *VeterinarianRepository) Create(v models.Veterinarian) error {
	ctx := context.Background()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM veterinarios WHERE crmv = $1)`, v.CRMV).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict("CRMV já cadastrado.")
	}

	query := `
		INSERT INTO veterinarios (id, nome, crmv, especialidade, contato)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query, v.ID, v.Name, v.CRMV, v.Specialty, v.Contact)
	return err
}

func (r *VeterinarianRepository) List(skip, limit int, specialty string) ([]models.Veterinarian, error) {
	ctx := context.Background()

	query := `SELECT id, nome, crmv, especialidade, contato
		FROM veterinarios
		WHERE ($3 = '' OR especialidade = $3)
		ORDER BY seq OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, skip, limit, specialty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Veterinarian{}
	for rows.Next() {
		var v models.Veterinarian
		if err := rows.Scan(&v.ID, &v.Name, &v.CRMV, &v.Specialty, &v.Contact); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VeterinarianRepository) FindByID(id int) (*models.Veterinarian, error) {
	ctx := context.Background()

	query := `SELECT id, nome, crmv, especialidade, contato
		FROM veterinarios WHERE id = $1`

	var v models.Veterinarian
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.CRMV, &v.Specialty, &v.Contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *VeterinarianRepository) Update(id int, v models.Veterinarian) error {
	ctx := context.Background()

	query := `UPDATE veterinarios
		SET id = $2, nome = $3, crmv = $4, especialidade = $5, contato = $6
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, v.ID, v.Name, v.CRMV, v.Specialty, v.Contact)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("veterinario", "Veterinário não encontrado.")
	}
	return nil
}

func (r *VeterinarianRepository) Delete(id int) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM veterinarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("veterinario", "Veterinário não encontrado.")
	}
	return nil
}
