package memory

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
)

type appointmentRepo struct {
	store *Store
}

func (r *appointmentRepo) Create(a models.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Exact-match double-booking check, no interval overlap logic.
	for _, existing := range s.appointments {
		if existing.VeterinarianID == a.VeterinarianID &&
			existing.Date.Equal(a.Date.Time) &&
			existing.TimeSlot == a.TimeSlot {
			return apperrors.Conflict("Conflito de horário para o veterinário.")
		}
	}
	s.appointments = append(s.appointments, a)
	return nil
}

func (r *appointmentRepo) ListAll() ([]models.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}

func (r *appointmentRepo) FindByID(id int) (*models.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}
