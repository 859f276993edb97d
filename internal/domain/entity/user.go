package entity

import "time"

// User es el dueño de ventas, productos y puntos de venta.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // nunca plano en dominio después de persistir
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
