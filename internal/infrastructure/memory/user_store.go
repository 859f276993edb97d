package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// UserStore almacén de credenciales en memoria. Email es único.
type UserStore struct {
	mu    sync.RWMutex
	byID  map[string]entity.User
	email map[string]string // email -> id
}

// NewUserStore construye un almacén vacío.
func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[string]entity.User), email: make(map[string]string)}
}

func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.email[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	s.byID[user.ID] = *user
	s.email[user.Email] = user.ID
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.email[email]
	if !ok {
		return nil, nil
	}
	u := s.byID[id]
	return &u, nil
}

// Delete elimina el usuario. No forma parte del puerto; se usa para simular
// un usuario borrado después de emitir su token.
func (s *UserStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.email, u.Email)
	delete(s.byID, id)
	return nil
}
