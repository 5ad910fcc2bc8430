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

type AnimalRepository struct {
	pool *pgxpool.Pool
}

func NewAnimalRepository(pool *pgxpool.Pool) repositories.AnimalRepository {
	return &AnimalRepository{pool: pool}
}

func (r *AnimalRepository) Create(a models.Animal) error {
	ctx := context.Background()

	query := `
		INSERT INTO animais (id, nome, especie, raca, sexo, data_nascimento, responsavel_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.Species, a.Breed, a.Sex, a.BirthDate.Time, a.GuardianID)
	return err
}

func (r *AnimalRepository) List(skip, limit int, species string) ([]models.Animal, error) {
	ctx := context.Background()

	query := `SELECT id, nome, especie, raca, sexo, data_nascimento, responsavel_id
		FROM animais
		WHERE ($3 = '' OR especie = $3)
		ORDER BY seq OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, skip, limit, species)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Animal{}
	for rows.Next() {
		var a models.Animal
		if err := rows.Scan(&a.ID, &a.Name, &a.Species, &a.Breed, &a.Sex, &a.BirthDate.Time, &a.GuardianID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalRepository) FindByID(id int) (*models.Animal, error) {
	ctx := context.Background()

	query := `SELECT id, nome, especie, raca, sexo, data_nascimento, responsavel_id
		FROM animais WHERE id = $1`

	var a models.Animal
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Species, &a.Breed, &a.Sex, &a.BirthDate.Time, &a.GuardianID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnimalRepository) Update(id int, a models.Animal) error {
	ctx := context.Background()

	query := `UPDATE animais
		SET id = $2, nome = $3, especie = $4, raca = $5, sexo = $6, data_nascimento = $7, responsavel_id = $8
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		id, a.ID, a.Name, a.Species, a.Breed, a.Sex, a.BirthDate.Time, a.GuardianID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("animal", "Animal não encontrado.")
	}
	return nil
}

func (r *AnimalRepository) Delete(id int) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM animais WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("animal", "Animal não encontrado.")
	}
	return nil
}
