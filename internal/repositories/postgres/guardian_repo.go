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

type GuardianRepository struct {
	pool *pgxpool.Pool
}

func NewGuardianRepository(pool *pgxpool.Pool) repositories.GuardianRepository {
	return &GuardianRepository{pool: pool}
}

func (r *GuardianRepository) Create(g models.Guardian) error {
	ctx := context.Background()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM responsaveis WHERE cpf = $1)`, g.CPF).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict("CPF já cadastrado.")
	}

	query := `
		INSERT INTO responsaveis (id, nome, cpf, telefone, email, endereco)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query, g.ID, g.Name, g.CPF, g.Phone, g.Email, g.Address)
	return err
}

func (r *GuardianRepository) List(skip, limit int) ([]models.Guardian, error) {
	ctx := context.Background()

	query := `SELECT id, nome, cpf, telefone, email, endereco
		FROM responsaveis ORDER BY seq OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Guardian{}
	for rows.Next() {
		var g models.Guardian
		if err := rows.Scan(&g.ID, &g.Name, &g.CPF, &g.Phone, &g.Email, &g.Address); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GuardianRepository) FindByID(id int) (*models.Guardian, error) {
	ctx := context.Background()

	query := `SELECT id, nome, cpf, telefone, email, endereco
		FROM responsaveis WHERE id = $1`

	var g models.Guardian
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.CPF, &g.Phone, &g.Email, &g.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *GuardianRepository) Update(id int, g models.Guardian) error {
	ctx := context.Background()

	query := `UPDATE responsaveis
		SET id = $2, nome = $3, cpf = $4, telefone = $5, email = $6, endereco = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, g.ID, g.Name, g.CPF, g.Phone, g.Email, g.Address)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("responsavel", "Responsável não encontrado.")
	}
	return nil
}

func (r *GuardianRepository) Delete(id int) error {
	ctx := context.Background()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM responsaveis WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("responsavel", "Responsável não encontrado.")
	}

	var hasAnimals bool
	err = r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM animais WHERE responsavel_id = $1)`, id).Scan(&hasAnimals)
	if err != nil {
		return err
	}
	if hasAnimals {
		return apperrors.Conflict("Não é possível remover um responsável com animais ativos.")
	}

	_, err = r.pool.Exec(ctx, `DELETE FROM responsaveis WHERE id = $1`, id)
	return err
}
