package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// SaleStore ventas en memoria.
type SaleStore struct {
	mu   sync.RWMutex
	byID map[string]entity.Sale
}

func NewSaleStore() *SaleStore {
	return &SaleStore{byID: make(map[string]entity.Sale)}
}

func (s *SaleStore) Create(_ context.Context, sale *entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sale.ID] = *sale
	return nil
}

func (s *SaleStore) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// GetByIDs ignora los IDs inexistentes y no filtra por dueño.
func (s *SaleStore) GetByIDs(_ context.Context, ids []string) ([]*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if v, ok := s.byID[id]; ok {
			out = append(out, &v)
		}
	}
	sortSales(out)
	return out, nil
}

func (s *SaleStore) Update(_ context.Context, sale *entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	s.byID[sale.ID] = *sale
	return nil
}

func (s *SaleStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *SaleStore) ListByUser(_ context.Context, userID string, filter *repository.Filter) ([]*entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Sale, 0)
	for _, v := range s.byID {
		if v.UserID != userID {
			continue
		}
		ok, err := matches(&v, filter, saleField, nil)
		if err != nil {
			return nil, err
		}
		if ok {
			sale := v
			out = append(out, &sale)
		}
	}
	sortSales(out)
	return out, nil
}

func (s *SaleStore) DistinctValues(ctx context.Context, userID, field string) ([]string, error) {
	all, err := s.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return distinct(all, field, saleField)
}

func saleField(s *entity.Sale, field string) (string, bool) {
	switch field {
	case repository.FieldProduct:
		return s.Product, true
	case repository.FieldType:
		return s.Type, true
	case repository.FieldStatus:
		return s.Status, true
	}
	return "", false
}

// sortSales fecha de venta descendente; empate por ID.
func sortSales(items []*entity.Sale) {
	slices.SortFunc(items, func(a, b *entity.Sale) int {
		if c := b.SaleDate.Compare(a.SaleDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
