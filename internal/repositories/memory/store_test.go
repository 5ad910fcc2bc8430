package memory

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
)

func guardian(id int, cpf string) models.Guardian {
	return models.Guardian{
		ID:      id,
		Name:    fmt.Sprintf("Tutor %d", id),
		CPF:     cpf,
		Phone:   "(11) 91234-5678",
		Email:   fmt.Sprintf("tutor%d@example.com", id),
		Address: "Rua das Flores, 100",
	}
}

func TestGuardianRepo_DuplicateCPF(t *testing.T) {
	store := NewStore()
	repo := store.Guardians()

	require.NoError(t, repo.Create(guardian(1, "12345678901")))
	require.NoError(t, repo.Create(guardian(2, "98765432100")))

	err := repo.Create(guardian(3, "12345678901"))
	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)

	// No partial write on conflict.
	all, err := repo.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGuardianRepo_ListPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	repo := store.Guardians()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(guardian(i, fmt.Sprintf("1234567890%d", i))))
	}

	all, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, g := range all {
		assert.Equal(t, i+1, g.ID)
	}
}

func TestGuardianRepo_Pagination(t *testing.T) {
	store := NewStore()
	repo := store.Guardians()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(guardian(i, fmt.Sprintf("1234567890%d", i))))
	}

	page, err := repo.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].ID)
	assert.Equal(t, 4, page[1].ID)

	// Offset past the end yields an empty sequence, never an error.
	empty, err := repo.List(50, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Limit past the end is clamped.
	tail, err := repo.List(4, 10)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, 5, tail[0].ID)

	// A huge limit must not overflow the window arithmetic.
	huge, err := repo.List(2, math.MaxInt)
	require.NoError(t, err)
	require.Len(t, huge, 3)
	assert.Equal(t, 3, huge[0].ID)
}

func TestGuardianRepo_UpdateReplacesWholeRecord(t *testing.T) {
	store := NewStore()
	repo := store.Guardians()

	require.NoError(t, repo.Create(guardian(1, "12345678901")))

	updated := guardian(1, "12345678901")
	updated.Name = "Tutor Renomeado"
	require.NoError(t, repo.Update(1, updated))

	found, err := repo.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Tutor Renomeado", found.Name)

	err = repo.Update(99, updated)
	var nerr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestGuardianRepo_DeleteBlockedByAnimals(t *testing.T) {
	store := NewStore()
	guardians := store.Guardians()
	animals := store.Animals()

	require.NoError(t, guardians.Create(guardian(1, "12345678901")))
	require.NoError(t, animals.Create(models.Animal{
		ID: 1, Name: "Rex", Species: "Cachorro", Breed: "Vira-lata",
		Sex: models.SexMale, BirthDate: models.NewDate(time.Now()), GuardianID: 1,
	}))

	err := guardians.Delete(1)
	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)

	// The guardian record stays intact after the blocked delete.
	found, err := guardians.FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, animals.Delete(1))
	require.NoError(t, guardians.Delete(1))

	err = guardians.Delete(1)
	var nerr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestAnimalRepo_SpeciesFilterBeforeSlicing(t *testing.T) {
	store := NewStore()
	repo := store.Animals()

	species := []string{"Cachorro", "Gato", "Cachorro", "Gato", "Cachorro"}
	for i, sp := range species {
		require.NoError(t, repo.Create(models.Animal{
			ID: i + 1, Name: fmt.Sprintf("Animal %d", i+1), Species: sp,
			Breed: "Vira-lata", Sex: models.SexFemale, BirthDate: models.NewDate(time.Now()), GuardianID: 1,
		}))
	}

	dogs, err := repo.List(0, 10, "Cachorro")
	require.NoError(t, err)
	require.Len(t, dogs, 3)

	// Filter applies before slicing.
	secondDog, err := repo.List(1, 1, "Cachorro")
	require.NoError(t, err)
	require.Len(t, secondDog, 1)
	assert.Equal(t, 3, secondDog[0].ID)

	all, err := repo.List(0, 10, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestVeterinarianRepo_DuplicateCRMV(t *testing.T) {
	store := NewStore()
	repo := store.Veterinarians()

	vet := models.Veterinarian{
		ID: 1, Name: "Dra. Ana", CRMV: "SP-12345",
		Specialty: "Dermatologia", Contact: "(11) 91234-5678",
	}
	require.NoError(t, repo.Create(vet))

	dup := vet
	dup.ID = 2
	err := repo.Create(dup)
	var cerr *apperrors.ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestAppointmentRepo_DoubleBooking(t *testing.T) {
	store := NewStore()
	repo := store.Appointments()

	date := models.NewDate(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	first := models.Appointment{
		ID: 1, AnimalID: 1, VeterinarianID: 1,
		Date: date, TimeSlot: "09:00", VisitType: "Rotina",
	}
	require.NoError(t, repo.Create(first))

	// Exact same (veterinarian, date, slot) conflicts.
	dup := first
	dup.ID = 2
	err := repo.Create(dup)
	var cerr *apperrors.ConflictError
	require.ErrorAs(t, err, &cerr)

	// Changing any one of the three fields succeeds.
	otherVet := first
	otherVet.ID = 3
	otherVet.VeterinarianID = 2
	require.NoError(t, repo.Create(otherVet))

	otherDate := first
	otherDate.ID = 4
	otherDate.Date = models.NewDate(date.AddDate(0, 0, 1))
	require.NoError(t, repo.Create(otherDate))

	otherSlot := first
	otherSlot.ID = 5
	otherSlot.TimeSlot = "10:00"
	require.NoError(t, repo.Create(otherSlot))

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCredentialRepo_Upsert(t *testing.T) {
	store := NewStore()
	repo := store.Credentials()

	require.NoError(t, repo.Upsert(models.Credential{Username: "admin", PasswordHash: "h1", Role: "admin"}))
	require.NoError(t, repo.Upsert(models.Credential{Username: "admin", PasswordHash: "h2", Role: "admin"}))

	cred, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "h2", cred.PasswordHash)

	missing, err := repo.FindByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
