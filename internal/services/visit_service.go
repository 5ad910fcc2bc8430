package services

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type VisitService struct {
	visitRepo       repositories.VisitRepository
	appointmentRepo repositories.AppointmentRepository
}

func NewVisitService(visitRepo repositories.VisitRepository, appointmentRepo repositories.AppointmentRepository) *VisitService {
	return &VisitService{visitRepo: visitRepo, appointmentRepo: appointmentRepo}
}

func (s *VisitService) Create(v models.Visit) error {
	appointment, err := s.appointmentRepo.FindByID(v.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperrors.NotFound("consulta", "Consulta não encontrada.")
	}
	return s.visitRepo.Create(v)
}

func (s *VisitService) ListAll() ([]models.Visit, error) {
	return s.visitRepo.ListAll()
}
