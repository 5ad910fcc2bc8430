package models

// Medication is prescribed during a visit.
type Medication struct {
	ID        int    `json:"id" binding:"required"`
	VisitID   int    `json:"atendimento_id" binding:"required"`
	Name      string `json:"nome" binding:"required"`
	Dosage    string `json:"dosagem" binding:"required"`
	Frequency string `json:"frequencia" binding:"required"`
	Form      string `json:"forma" binding:"required"`
	Notes     string `json:"observacoes,omitempty"`
}
