package models

// Credential is a login account for clinic staff. PasswordHash holds an
// argon2id encoded hash, never the plain password.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
