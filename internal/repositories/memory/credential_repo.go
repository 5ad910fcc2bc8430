package memory

import "vetclinic/internal/models"

type credentialRepo struct {
	store *Store
}

func (r *credentialRepo) Upsert(c models.Credential) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.credentials {
		if existing.Username == c.Username {
			s.credentials[i] = c
			return nil
		}
	}
	s.credentials = append(s.credentials, c)
	return nil
}

func (r *credentialRepo) FindByUsername(username string) (*models.Credential, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.credentials {
		if c.Username == username {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}
