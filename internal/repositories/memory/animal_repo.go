package memory

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
)

type animalRepo struct {
	store *Store
}

func (r *animalRepo) Create(a models.Animal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.animals = append(s.animals, a)
	return nil
}

func (r *animalRepo) List(skip, limit int, species string) ([]models.Animal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	animals := s.animals
	if species != "" {
		filtered := make([]models.Animal, 0, len(animals))
		for _, a := range animals {
			if a.Species == species {
				filtered = append(filtered, a)
			}
		}
		animals = filtered
	}
	return paginate(animals, skip, limit), nil
}

func (r *animalRepo) FindByID(id int) (*models.Animal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.animals {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *animalRepo) Update(id int, a models.Animal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.animals {
		if existing.ID == id {
			s.animals[i] = a
			return nil
		}
	}
	return apperrors.NotFound("animal", "Animal não encontrado.")
}

func (r *animalRepo) Delete(id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.animals {
		if existing.ID == id {
			s.animals = append(s.animals[:i], s.animals[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("animal", "Animal não encontrado.")
}
