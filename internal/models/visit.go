package models

// Visit records what happened during an appointment.
type Visit struct {
	ID            int    `json:"id" binding:"required"`
	AppointmentID int    `json:"consulta_id" binding:"required"`
	Notes         string `json:"observacoes,omitempty"`
	Diagnosis     string `json:"diagnostico,omitempty"`
}
