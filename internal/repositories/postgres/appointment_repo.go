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

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) repositories.AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Create(a models.Appointment) error {
	ctx := context.Background()

	var booked bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM consultas
			WHERE veterinario_id = $1 AND data = $2 AND horario = $3
		)`, a.VeterinarianID, a.Date.Time, a.TimeSlot).Scan(&booked)
	if err != nil {
		return err
	}
	if booked {
		return apperrors.Conflict("Conflito de horário para o veterinário.")
	}

	query := `
		INSERT INTO consultas (id, animal_id, veterinario_id, data, horario, tipo_atendimento)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query,
		a.ID, a.AnimalID, a.VeterinarianID, a.Date.Time, a.TimeSlot, a.VisitType)
	return err
}

func (r *AppointmentRepository) ListAll() ([]models.Appointment, error) {
	ctx := context.Background()

	query := `SELECT id, animal_id, veterinario_id, data, horario, tipo_atendimento
		FROM consultas ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Appointment{}
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.AnimalID, &a.VeterinarianID, &a.Date.Time, &a.TimeSlot, &a.VisitType); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) FindByID(id int) (*models.Appointment, error) {
	ctx := context.Background()

	query := `SELECT id, animal_id, veterinario_id, data, horario, tipo_atendimento
		FROM consultas WHERE id = $1`

	var a models.Appointment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.AnimalID, &a.VeterinarianID, &a.Date.Time, &a.TimeSlot, &a.VisitType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
