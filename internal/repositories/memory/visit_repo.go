package memory

import "vetclinic/internal/models"

type visitRepo struct {
	store *Store
}

func (r *visitRepo) Create(v models.Visit) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits = append(s.visits, v)
	return nil
}

func (r *visitRepo) ListAll() ([]models.Visit, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Visit, len(s.visits))
	copy(out, s.visits)
	return out, nil
}

func (r *visitRepo) FindByID(id int) (*models.Visit, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.visits {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}
