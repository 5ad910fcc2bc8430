package services

import (
	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

type AppointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	animalRepo      repositories.AnimalRepository
	vetRepo         repositories.VeterinarianRepository
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	animalRepo repositories.AnimalRepository,
	vetRepo repositories.VeterinarianRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		animalRepo:      animalRepo,
		vetRepo:         vetRepo,
	}
}

// Create books an appointment. Both references must resolve, and the
// repository rejects a second booking for the same veterinarian, date
// and time slot.
func (s *AppointmentService) Create(a models.Appointment) error {
	animal, err := s.animalRepo.FindByID(a.AnimalID)
	if err != nil {
		return err
	}
	if animal == nil {
		return apperrors.NotFound("animal", "Animal não encontrado.")
	}

	vet, err := s.vetRepo.FindByID(a.VeterinarianID)
	if err != nil {
		return err
	}
	if vet == nil {
		return apperrors.NotFound("veterinario", "Veterinário não encontrado.")
	}

	return s.appointmentRepo.Create(a)
}

func (s *AppointmentService) ListAll() ([]models.Appointment, error) {
	return s.appointmentRepo.ListAll()
}

// Agenda joins appointments with their animals in appointment order.
// Appointments whose animal no longer resolves are skipped.
func (s *AppointmentService) Agenda() ([]models.AgendaEntry, error) {
	appointments, err := s.appointmentRepo.ListAll()
	if err != nil {
		return nil, err
	}

	agenda := make([]models.AgendaEntry, 0, len(appointments))
	for _, appt := range appointments {
		animal, err := s.animalRepo.FindByID(appt.AnimalID)
		if err != nil {
			return nil, err
		}
		if animal == nil {
			continue
		}
		agenda = append(agenda, models.AgendaEntry{
			TimeSlot:   appt.TimeSlot,
			AnimalName: animal.Name,
			VisitType:  appt.VisitType,
		})
	}
	return agenda, nil
}
