package models

const (
	SexMale   = "Macho"
	SexFemale = "Fêmea"
)

// Animal belongs to exactly one Guardian (GuardianID).
type Animal struct {
	ID         int    `json:"id" binding:"required"`
	Name       string `json:"nome" binding:"required,min=2,max=30"`
	Species    string `json:"especie" binding:"required,min=3,max=20"`
	Breed      string `json:"raca" binding:"required,min=3,max=30"`
	Sex        string `json:"sexo" binding:"required,oneof=Macho Fêmea"`
	BirthDate  Date   `json:"data_nascimento" binding:"required"`
	GuardianID int    `json:"responsavel_id" binding:"required"`
}
