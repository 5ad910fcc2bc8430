package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type CredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCredentialRepository(pool *pgxpool.Pool) repositories.CredentialRepository {
	return &CredentialRepository{pool: pool}
}

func (r *CredentialRepository) Upsert(c models.Credential) error {
	ctx := context.Background()

	query := `
		INSERT INTO credenciais (username, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
	`
	_, err := r.pool.Exec(ctx, query, c.Username, c.PasswordHash, c.Role)
	return err
}

func (r *CredentialRepository) FindByUsername(username string) (*models.Credential, error) {
	ctx := context.Background()

	query := `SELECT username, password_hash, role FROM credenciais WHERE username = $1`

	var c models.Credential
	err := r.pool.QueryRow(ctx, query, username).Scan(&c.Username, &c.PasswordHash, &c.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
