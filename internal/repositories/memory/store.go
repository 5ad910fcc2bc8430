package memory

import (
	"sync"

	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
)

// Store holds the six clinic collections plus login credentials in
// process memory. Collections are slices so listings keep insertion
// order. A single mutex covers every mutation, making each uniqueness
// or conflict scan atomic with its write.
type Store struct {
	mu sync.RWMutex

	guardians     []models.Guardian
	animals       []models.Animal
	veterinarians []models.Veterinarian
	appointments  []models.Appointment
	visits        []models.Visit
	medications   []models.Medication
	credentials   []models.Credential
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Guardians() repositories.GuardianRepository {
	return &guardianRepo{store: s}
}

func (s *Store) Animals() repositories.AnimalRepository {
	return &animalRepo{store: s}
}

func (s *Store) Veterinarians() repositories.VeterinarianRepository {
	return &veterinarianRepo{store: s}
}

func (s *Store) Appointments() repositories.AppointmentRepository {
	return &appointmentRepo{store: s}
}

func (s *Store) Visits() repositories.VisitRepository {
	return &visitRepo{store: s}
}

func (s *Store) Medications() repositories.MedicationRepository {
	return &medicationRepo{store: s}
}

func (s *Store) Credentials() repositories.CredentialRepository {
	return &credentialRepo{store: s}
}

// paginate returns the [skip, skip+limit) window of items. Offsets past
// the end yield an empty slice, never an error.
func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	// Clamp without computing skip+limit, which can overflow.
	end := len(items)
	if limit >= 1 && limit < end-skip {
		end = skip + limit
	}
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}
