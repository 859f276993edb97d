package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-api/internal/domain/entity"
)

var (
	alice = &entity.User{ID: "user-a", Name: "Alice", Email: "alice@example.com", Active: true}
	bob   = &entity.User{ID: "user-b", Name: "Bob", Email: "bob@example.com", Active: true}
)

// fixedClock reloj manual; cada llamada avanza un segundo para que el orden
// por fecha de creación sea determinista.
type fixedClock struct{ t time.Time }

func newClock() *fixedClock {
	return &fixedClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }
