package services

import (
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type GuardianService struct {
	guardianRepo repositories.GuardianRepository
}

func NewGuardianService(guardianRepo repositories.GuardianRepository) *GuardianService {
	return &GuardianService{guardianRepo: guardianRepo}
}

func (s *GuardianService) Create(g models.Guardian) error {
	return s.guardianRepo.Create(g)
}

func (s *GuardianService) List(skip, limit int) ([]models.Guardian, error) {
	return s.guardianRepo.List(skip, limit)
}

func (s *GuardianService) Update(id int, g models.Guardian) error {
	return s.guardianRepo.Update(id, g)
}

func (s *GuardianService) Delete(id int) error {
	return s.guardianRepo.Delete(id)
}
