package models

// Appointment books a veterinarian for an animal at (Date, TimeSlot).
// The triple (VeterinarianID, Date, TimeSlot) must be unique.
type Appointment struct {
	ID             int    `json:"id" binding:"required"`
	AnimalID       int    `json:"animal_id" binding:"required"`
	VeterinarianID int    `json:"veterinario_id" binding:"required"`
	Date           Date   `json:"data" binding:"required"`
	TimeSlot       string `json:"horario" binding:"required"`
	VisitType      string `json:"tipo_atendimento" binding:"required"`
}

// AgendaEntry is the public projection of an appointment joined with
// its animal. Appointments whose animal is missing are skipped.
type AgendaEntry struct {
	TimeSlot   string `json:"horario"`
	AnimalName string `json:"nome_animal"`
	VisitType  string `json:"tipo_atendimento"`
}
