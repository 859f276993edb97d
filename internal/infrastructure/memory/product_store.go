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

// ProductStore productos en memoria; (user_id, code) es único.
type ProductStore struct {
	mu   sync.RWMutex
	byID map[string]entity.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{byID: make(map[string]entity.Product)}
}

func (s *ProductStore) Create(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codeTaken(p.UserID, p.Code, "") {
		return domain.ErrDuplicateCode
	}
	s.byID[p.ID] = *p
	return nil
}

func (s *ProductStore) GetByID(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *ProductStore) GetByUserAndCode(_ context.Context, userID, code string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.byID {
		if v.UserID == userID && v.Code == code {
			return &v, nil
		}
	}
	return nil, nil
}

func (s *ProductStore) Update(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if s.codeTaken(p.UserID, p.Code, p.ID) {
		return domain.ErrDuplicateCode
	}
	s.byID[p.ID] = *p
	return nil
}

func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *ProductStore) ListByUser(_ context.Context, userID string, filter *repository.Filter) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, v := range s.byID {
		if v.UserID != userID {
			continue
		}
		ok, err := matches(&v, filter, productField, func(p *entity.Product) bool { return p.Active })
		if err != nil {
			return nil, err
		}
		if ok {
			p := v
			out = append(out, &p)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *ProductStore) DistinctValues(ctx context.Context, userID, field string) ([]string, error) {
	all, err := s.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return distinct(all, field, productField)
}

func (s *ProductStore) ListLowStock(ctx context.Context, userID string, threshold int) ([]*entity.Product, error) {
	all, err := s.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	out := slices.DeleteFunc(all, func(p *entity.Product) bool { return p.Stock > threshold })
	slices.SortStableFunc(out, func(a, b *entity.Product) int { return cmp.Compare(a.Stock, b.Stock) })
	return out, nil
}

// codeTaken se llama con el lock tomado.
func (s *ProductStore) codeTaken(userID, code, exceptID string) bool {
	for id, v := range s.byID {
		if id != exceptID && v.UserID == userID && v.Code == code {
			return true
		}
	}
	return false
}

func productField(p *entity.Product, field string) (string, bool) {
	switch field {
	case repository.FieldName:
		return p.Name, true
	case repository.FieldCategory:
		return p.Category, true
	}
	return "", false
}
