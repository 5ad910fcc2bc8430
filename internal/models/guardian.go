package models

// Guardian is the person responsible for one or more animals.
// CPF must be unique across the collection.
type Guardian struct {
	ID      int    `json:"id" binding:"required"`
	Name    string `json:"nome" binding:"required,min=3,max=50"`
	CPF     string `json:"cpf" binding:"required,len=11,number"`
	Phone   string `json:"telefone" binding:"required,br_phone"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"endereco" binding:"required,min=5,max=100"`
}
