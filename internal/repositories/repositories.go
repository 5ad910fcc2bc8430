package repositories

import "vetclinic/internal/models"

// Collection repositories. Implementations must keep insertion order in
// List results and must run uniqueness / conflict scans atomically with
// the write. Lookups that miss return (nil, nil).

type GuardianRepository interface {
	// Create fails with ConflictError when the CPF is already registered.
	Create(g models.Guardian) error
	List(skip, limit int) ([]models.Guardian, error)
	FindByID(id int) (*models.Guardian, error)
	// Update replaces the whole record stored under id; NotFoundError
	// when the id is absent.
	Update(id int, g models.Guardian) error
	// Delete fails with ConflictError while any animal references the
	// guardian, NotFoundError when the id is absent.
	Delete(id int) error
}

type AnimalRepository interface {
	Create(a models.Animal) error
	// List filters by species (exact match) when species is non-empty,
	// then slices [skip, skip+limit).
	List(skip, limit int, species string) ([]models.Animal, error)
	FindByID(id int) (*models.Animal, error)
	Update(id int, a models.Animal) error
	Delete(id int) error
}

type VeterinarianRepository interface {
	// Create fails with ConflictError when the CRMV is already registered.
	Create(v models.Veterinarian) error
	List(skip, limit int, specialty string) ([]models.Veterinarian, error)
	FindByID(id int) (*models.Veterinarian, error)
	Update(id int, v models.Veterinarian) error
	Delete(id int) error
}

type AppointmentRepository interface {
	// Create fails with ConflictError when another appointment holds the
	// same (veterinarian, date, time slot).
	Create(a models.Appointment) error
	ListAll() ([]models.Appointment, error)
	FindByID(id int) (*models.Appointment, error)
}

type VisitRepository interface {
	Create(v models.Visit) error
	ListAll() ([]models.Visit, error)
	FindByID(id int) (*models.Visit, error)
}

type MedicationRepository interface {
	Create(m models.Medication) error
	ListAll() ([]models.Medication, error)
}

type CredentialRepository interface {
	Upsert(c models.Credential) error
	FindByUsername(username string) (*models.Credential, error)
}
