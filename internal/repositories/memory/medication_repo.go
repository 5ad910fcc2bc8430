package memory

import "vetclinic/internal/models"

type medicationRepo struct {
	store *Store
}

func (r *medicationRepo) Create(m models.Medication) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.medications = append(s.medications, m)
	return nil
}

func (r *medicationRepo) ListAll() ([]models.Medication, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Medication, len(s.medications))
	copy(out, s.medications)
	return out, nil
}
