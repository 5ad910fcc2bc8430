package services

import (
	"time"

	"vetclinic/internal/apperrors"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
	"vetclinic/internal/utils"
)

type AuthService struct {
	credentialRepo repositories.CredentialRepository
	roles          *RoleTable
	tokenSecret    []byte
	tokenTTL       time.Duration
}

func NewAuthService(
	credentialRepo repositories.CredentialRepository,
	roles *RoleTable,
	tokenSecret []byte,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		credentialRepo: credentialRepo,
		roles:          roles,
		tokenSecret:    tokenSecret,
		tokenTTL:       tokenTTL,
	}
}

// SeedCredential hashes the plain password and stores the account,
// replacing any previous credential for the username.
func (s *AuthService) SeedCredential(username, password, role string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.credentialRepo.Upsert(models.Credential{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
}

// Login exchanges a username/password pair for a bearer token.
func (s *AuthService) Login(username, password string) (string, error) {
	cred, err := s.credentialRepo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", apperrors.Auth("Invalid credentials")
	}
	if err := utils.VerifyPassword(cred.PasswordHash, password); err != nil {
		return "", apperrors.Auth("Invalid credentials")
	}
	return utils.GenerateToken(username, s.tokenSecret, s.tokenTTL)
}

// ValidateToken resolves a bearer token back to its username.
func (s *AuthService) ValidateToken(tokenStr string) (string, error) {
	claims, err := utils.VerifyToken(tokenStr, s.tokenSecret)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// UserPermissions resolves a username to the permission set of its
// role. Unknown usernames yield an empty set.
func (s *AuthService) UserPermissions(username string) ([]string, error) {
	cred, err := s.credentialRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return []string{}, nil
	}
	return s.roles.Permissions(cred.Role), nil
}

// RolePermissions looks up the static table by role name.
func (s *AuthService) RolePermissions(role string) []string {
	return s.roles.Permissions(role)
}
