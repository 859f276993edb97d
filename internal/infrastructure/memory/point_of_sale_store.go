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

// PointOfSaleStore PDVs en memoria.
type PointOfSaleStore struct {
	mu   sync.RWMutex
	byID map[string]entity.PointOfSale
}

func NewPointOfSaleStore() *PointOfSaleStore {
	return &PointOfSaleStore{byID: make(map[string]entity.PointOfSale)}
}

func (s *PointOfSaleStore) Create(_ context.Context, p *entity.PointOfSale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = *p
	return nil
}

func (s *PointOfSaleStore) GetByID(_ context.Context, id string) (*entity.PointOfSale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *PointOfSaleStore) Update(_ context.Context, p *entity.PointOfSale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	s.byID[p.ID] = *p
	return nil
}

func (s *PointOfSaleStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *PointOfSaleStore) ListByUser(_ context.Context, userID string, filter *repository.Filter) ([]*entity.PointOfSale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.PointOfSale, 0)
	for _, v := range s.byID {
		if v.UserID != userID {
			continue
		}
		ok, err := matches(&v, filter, pointOfSaleField, func(p *entity.PointOfSale) bool { return p.Active })
		if err != nil {
			return nil, err
		}
		if ok {
			p := v
			out = append(out, &p)
		}
	}
	slices.SortFunc(out, func(a, b *entity.PointOfSale) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *PointOfSaleStore) DistinctValues(ctx context.Context, userID, field string) ([]string, error) {
	all, err := s.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return distinct(all, field, pointOfSaleField)
}

func pointOfSaleField(p *entity.PointOfSale, field string) (string, bool) {
	switch field {
	case repository.FieldName:
		return p.Name, true
	case repository.FieldAddress:
		return p.Address, true
	case repository.FieldNeighborhood:
		return p.Neighborhood, true
	case repository.FieldCity:
		return p.City, true
	case repository.FieldState:
		return p.State, true
	case repository.FieldType:
		return p.Type, true
	}
	return "", false
}
