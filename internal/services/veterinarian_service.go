package services

import (
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type VeterinarianService struct {
	vetRepo repositories.VeterinarianRepository
}

func NewVeterinarianService(vetRepo repositories.VeterinarianRepository) *VeterinarianService {
	return &VeterinarianService{vetRepo: vetRepo}
}

func (s *VeterinarianService) Create(v models.Veterinarian) error {
	return s.vetRepo.Create(v)
}

func (s *VeterinarianService) List(skip, limit int, specialty string) ([]models.Veterinarian, error) {
	return s.vetRepo.List(skip, limit, specialty)
}

func (s *VeterinarianService) Update(id int, v models.Veterinarian) error {
	return s.vetRepo.Update(id, v)
}

func (s *VeterinarianService) Delete(id int) error {
	return s.vetRepo.Delete(id)
}
