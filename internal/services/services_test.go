package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories/memory"
)

func seedGuardian(t *testing.T, store *memory.Store, id int, cpf string) {
	t.Helper()
	require.NoError(t, store.Guardians().Create(models.Guardian{
		ID: id, Name: "Tutor", CPF: cpf, Phone: "(11) 91234-5678",
		Email: "tutor@example.com", Address: "Rua das Flores, 100",
	}))
}

func seedAnimal(t *testing.T, store *memory.Store, id, guardianID int, name string) {
	t.Helper()
	require.NoError(t, store.Animals().Create(models.Animal{
		ID: id, Name: name, Species: "Cachorro", Breed: "Vira-lata",
		Sex: models.SexMale, BirthDate: models.NewDate(time.Now()), GuardianID: guardianID,
	}))
}

func seedVet(t *testing.T, store *memory.Store, id int, crmv string) {
	t.Helper()
	require.NoError(t, store.Veterinarians().Create(models.Veterinarian{
		ID: id, Name: "Dra. Ana", CRMV: crmv,
		Specialty: "Clínica Geral", Contact: "(11) 91234-5678",
	}))
}

func TestAnimalService_CreateRequiresGuardian(t *testing.T) {
	store := memory.NewStore()
	svc := NewAnimalService(store.Animals(), store.Guardians())

	err := svc.Create(models.Animal{
		ID: 1, Name: "Rex", Species: "Cachorro", Breed: "Vira-lata",
		Sex: models.SexMale, BirthDate: models.NewDate(time.Now()), GuardianID: 42,
	})
	var nerr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nerr)

	seedGuardian(t, store, 42, "12345678901")
	require.NoError(t, svc.Create(models.Animal{
		ID: 1, Name: "Rex", Species: "Cachorro", Breed: "Vira-lata",
		Sex: models.SexMale, BirthDate: models.NewDate(time.Now()), GuardianID: 42,
	}))

	animals, err := svc.List(0, 10, "")
	require.NoError(t, err)
	assert.Len(t, animals, 1)
}

func TestAppointmentService_CreateChecksReferences(t *testing.T) {
	store := memory.NewStore()
	svc := NewAppointmentService(store.Appointments(), store.Animals(), store.Veterinarians())

	appt := models.Appointment{
		ID: 1, AnimalID: 1, VeterinarianID: 1,
		Date: models.NewDate(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)), TimeSlot: "09:00", VisitType: "Rotina",
	}

	var nerr *apperrors.NotFoundError
	require.ErrorAs(t, svc.Create(appt), &nerr)

	seedGuardian(t, store, 1, "12345678901")
	seedAnimal(t, store, 1, 1, "Rex")
	require.ErrorAs(t, svc.Create(appt), &nerr)

	seedVet(t, store, 1, "SP-12345")
	require.NoError(t, svc.Create(appt))

	// Second identical booking is rejected by the conflict scan.
	appt.ID = 2
	var cerr *apperrors.ConflictError
	require.ErrorAs(t, svc.Create(appt), &cerr)
}

func TestAppointmentService_AgendaSkipsMissingAnimals(t *testing.T) {
	store := memory.NewStore()
	svc := NewAppointmentService(store.Appointments(), store.Animals(), store.Veterinarians())

	seedGuardian(t, store, 1, "12345678901")
	seedAnimal(t, store, 1, 1, "Rex")
	seedAnimal(t, store, 2, 1, "Mimi")
	seedVet(t, store, 1, "SP-12345")

	date := models.NewDate(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, svc.Create(models.Appointment{
		ID: 1, AnimalID: 1, VeterinarianID: 1, Date: date, TimeSlot: "09:00", VisitType: "Rotina",
	}))
	require.NoError(t, svc.Create(models.Appointment{
		ID: 2, AnimalID: 2, VeterinarianID: 1, Date: date, TimeSlot: "10:00", VisitType: "Vacina",
	}))

	// Removing an animal leaves its appointment dangling; the agenda
	// silently skips it.
	require.NoError(t, store.Animals().Delete(1))

	agenda, err := svc.Agenda()
	require.NoError(t, err)
	require.Len(t, agenda, 1)
	assert.Equal(t, "10:00", agenda[0].TimeSlot)
	assert.Equal(t, "Mimi", agenda[0].AnimalName)
	assert.Equal(t, "Vacina", agenda[0].VisitType)
}

func TestVisitService_CreateRequiresAppointment(t *testing.T) {
	store := memory.NewStore()
	svc := NewVisitService(store.Visits(), store.Appointments())

	err := svc.Create(models.Visit{ID: 1, AppointmentID: 7})
	var nerr *apperrors.NotFoundError
	require.ErrorAs(t, err, &nerr)

	require.NoError(t, store.Appointments().Create(models.Appointment{
		ID: 7, AnimalID: 1, VeterinarianID: 1,
		Date: models.NewDate(time.Now()), TimeSlot: "09:00", VisitType: "Rotina",
	}))
	require.NoError(t, svc.Create(models.Visit{ID: 1, AppointmentID: 7, Diagnosis: "Saudável"}))

	visits, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestMedicationService_CreateRequiresVisit(t *testing.T) {
	store := memory.NewStore()
	svc := NewMedicationService(store.Medications(), store.Visits())

	med := models.Medication{
		ID: 1, VisitID: 3, Name: "Dipirona", Dosage: "10mg",
		Frequency: "8/8h", Form: "Comprimido",
	}
	var nerr *apperrors.NotFoundError
	require.ErrorAs(t, svc.Create(med), &nerr)

	require.NoError(t, store.Visits().Create(models.Visit{ID: 3, AppointmentID: 1}))
	require.NoError(t, svc.Create(med))

	meds, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, meds, 1)
}

func TestRoleTable_Permissions(t *testing.T) {
	roles := NewRoleTable()

	assert.Equal(t, []string{"manage_users", "manage_vets"}, roles.Permissions("admin"))
	assert.Equal(t, []string{"view_schedule", "write_prescriptions"}, roles.Permissions("vet"))
	assert.Equal(t, []string{"schedule_appointments"}, roles.Permissions("reception"))
	assert.Empty(t, roles.Permissions("janitor"))
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Credentials(), NewRoleTable(), []byte("test-secret"), 30*time.Minute)

	require.NoError(t, svc.SeedCredential("admin", "admin", "admin"))

	token, err := svc.Login("admin", "admin")
	require.NoError(t, err)

	username, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	perms, err := svc.UserPermissions("admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"manage_users", "manage_vets"}, perms)

	var aerr *apperrors.AuthError
	_, err = svc.Login("admin", "wrong")
	require.ErrorAs(t, err, &aerr)
	_, err = svc.Login("ghost", "admin")
	require.ErrorAs(t, err, &aerr)
	_, err = svc.ValidateToken("garbage")
	require.ErrorAs(t, err, &aerr)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Credentials(), NewRoleTable(), []byte("test-secret"), -time.Minute)

	require.NoError(t, svc.SeedCredential("admin", "admin", "admin"))

	token, err := svc.Login("admin", "admin")
	require.NoError(t, err)

	var aerr *apperrors.AuthError
	_, err = svc.ValidateToken(token)
	require.ErrorAs(t, err, &aerr)
}

func TestAuthService_UnknownUserHasNoPermissions(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Credentials(), NewRoleTable(), []byte("test-secret"), time.Minute)

	perms, err := svc.UserPermissions("ghost")
	require.NoError(t, err)
	assert.Empty(t, perms)
}
