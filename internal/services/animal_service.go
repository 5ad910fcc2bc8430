package services

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type AnimalService struct {
	animalRepo   repositories.AnimalRepository
	guardianRepo repositories.GuardianRepository
}

func NewAnimalService(animalRepo repositories.AnimalRepository, guardianRepo repositories.GuardianRepository) *AnimalService {
	return &AnimalService{animalRepo: animalRepo, guardianRepo: guardianRepo}
}

// Create registers an animal after checking its guardian exists.
func (s *AnimalService) Create(a models.Animal) error {
	guardian, err := s.guardianRepo.FindByID(a.GuardianID)
	if err != nil {
		return err
	}
	if guardian == nil {
		return apperrors.NotFound("responsavel", "Responsável não encontrado.")
	}
	return s.animalRepo.Create(a)
}

func (s *AnimalService) List(skip, limit int, species string) ([]models.Animal, error) {
	return s.animalRepo.List(skip, limit, species)
}

func (s *AnimalService) Update(id int, a models.Animal) error {
	return s.animalRepo.Update(id, a)
}

func (s *AnimalService) Delete(id int) error {
	return s.animalRepo.Delete(id)
}
