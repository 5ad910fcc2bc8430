package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type MedicationRepository struct {
	pool *pgxpool.Pool
}

func NewMedicationRepository(pool *pgxpool.Pool) repositories.MedicationRepository {
	return &MedicationRepository{pool: pool}
}

func (r *MedicationRepository) Create(m models.Medication) error {
	ctx := context.Background()

	query := `
		INSERT INTO medicacoes (id, atendimento_id, nome, dosagem, frequencia, forma, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.VisitID, m.Name, m.Dosage, m.Frequency, m.Form, m.Notes)
	return err
}

func (r *MedicationRepository) ListAll() ([]models.Medication, error) {
	ctx := context.Background()

	query := `SELECT id, atendimento_id, nome, dosagem, frequencia, forma, COALESCE(observacoes, '')
		FROM medicacoes ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Medication{}
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.VisitID, &m.Name, &m.Dosage, &m.Frequency, &m.Form, &m.Notes); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
