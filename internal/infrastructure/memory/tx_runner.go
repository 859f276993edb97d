package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// SaleTxRunner serializa las secuencias leer-modificar-escribir sobre el SaleStore.
type SaleTxRunner struct {
	mu    sync.Mutex
	store *SaleStore
}

func NewSaleTxRunner(store *SaleStore) *SaleTxRunner {
	return &SaleTxRunner{store: store}
}

func (r *SaleTxRunner) RunSales(_ context.Context, fn func(repo repository.SaleRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store)
}
