package models

// Veterinarian holds the professional registry (CRMV), which must be
// unique across the collection.
type Veterinarian struct {
	ID        int    `json:"id" binding:"required"`
	Name      string `json:"nome" binding:"required,min=3,max=50"`
	CRMV      string `json:"crmv" binding:"required,min=5,max=10"`
	Specialty string `json:"especialidade" binding:"required,min=3,max=50"`
	Contact   string `json:"contato" binding:"required,br_phone"`
}
