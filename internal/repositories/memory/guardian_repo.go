package memory

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
)

type guardianRepo struct {
	store *Store
}

func (r *guardianRepo) Create(g models.Guardian) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.guardians {
		if existing.CPF == g.CPF {
			return apperrors.Conflict("CPF já cadastrado.")
		}
	}
	s.guardians = append(s.guardians, g)
	return nil
}

func (r *guardianRepo) List(skip, limit int) ([]models.Guardian, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return paginate(s.guardians, skip, limit), nil
}

func (r *guardianRepo) FindByID(id int) (*models.Guardian, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.guardians {
		if g.ID == id {
			found := g
			return &found, nil
		}
	}
	return nil, nil
}

func (r *guardianRepo) Update(id int, g models.Guardian) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.guardians {
		if existing.ID == id {
			s.guardians[i] = g
			return nil
		}
	}
	return apperrors.NotFound("responsavel", "Responsável não encontrado.")
}

func (r *guardianRepo) Delete(id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.guardians {
		if existing.ID != id {
			continue
		}
		for _, a := range s.animals {
			if a.GuardianID == id {
				return apperrors.Conflict("Não é possível remover um responsável com animais ativos.")
			}
		}
		s.guardians = append(s.guardians[:i], s.guardians[i+1:]...)
		return nil
	}
	return apperrors.NotFound("responsavel", "Responsável não encontrado.")
}
