// Package security implementa el hash de contraseñas con bcrypt.
package security

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sales-api/internal/domain"
)

// BcryptHasher hashea y verifica contraseñas. Cost 0 usa bcrypt.DefaultCost.
type BcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
	dummyErr  error
}

// NewBcryptHasher construye el hasher; en tests conviene bcrypt.MinCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de la contraseña.
// Más de 72 bytes es un error de entrada del cliente, no un fallo interno.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "maxbytes", "debe ocupar como máximo 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("security: hash: %w", err)
	}
	return string(hash), nil
}

// Verify compara en tiempo constante. Con hash vacío (usuario inexistente)
// compara contra un hash ficticio para que el tiempo de respuesta no revele
// si el email existe, y devuelve false.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	target := []byte(hash)
	if hash == "" {
		dummy, err := h.dummy()
		if err != nil {
			return false, err
		}
		target = dummy
	}
	err := bcrypt.CompareHashAndPassword(target, []byte(password))
	if hash == "" {
		return false, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("security: verify: %w", err)
	}
	return true, nil
}

func (h *BcryptHasher) dummy() ([]byte, error) {
	h.dummyOnce.Do(func() {
		h.dummyHash, h.dummyErr = bcrypt.GenerateFromPassword([]byte("dummy_password_for_timing"), h.cost)
	})
	return h.dummyHash, h.dummyErr
}
