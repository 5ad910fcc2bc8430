package services

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type MedicationService struct {
	medicationRepo repositories.MedicationRepository
	visitRepo      repositories.VisitRepository
}

func NewMedicationService(medicationRepo repositories.MedicationRepository, visitRepo repositories.VisitRepository) *MedicationService {
	return &MedicationService{medicationRepo: medicationRepo, visitRepo: visitRepo}
}

func (s *MedicationService) Create(m models.Medication) error {
	visit, err := s.visitRepo.FindByID(m.VisitID)
	if err != nil {
		return err
	}
	if visit == nil {
		return apperrors.NotFound("atendimento", "Atendimento não encontrado.")
	}
	return s.medicationRepo.Create(m)
}

func (s *MedicationService) ListAll() ([]models.Medication, error) {
	return s.medicationRepo.ListAll()
}
