package memory

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
)

type veterinarianRepo struct {
	store *Store
}

func (r *veterinarianRepo) Create(v models.Veterinarian) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.veterinarians {
		if existing.CRMV == v.CRMV {
			return apperrors.Conflict("CRMV já cadastrado.")
		}
	}
	s.veterinarians = append(s.veterinarians, v)
	return nil
}

func (r *veterinarianRepo) List(skip, limit int, specialty string) ([]models.Veterinarian, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	vets := s.veterinarians
	if specialty != "" {
		filtered := make([]models.Veterinarian, 0, len(vets))
		for _, v := range vets {
			if v.Specialty == specialty {
				filtered = append(filtered, v)
			}
		}
		vets = filtered
	}
	return paginate(vets, skip, limit), nil
}

func (r *veterinarianRepo) FindByID(id int) (*models.Veterinarian, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.veterinarians {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}

func (r *veterinarianRepo) Update(id int, v models.Veterinarian) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.veterinarians {
		if existing.ID == id {
			s.veterinarians[i] = v
			return nil
		}
	}
	return apperrors.NotFound("veterinario", "Veterinário não encontrado.")
}

func (r *veterinarianRepo) Delete(id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.veterinarians {
		if existing.ID == id {
			s.veterinarians = append(s.veterinarians[:i], s.veterinarians[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("veterinario", "Veterinário não encontrado.")
}
