package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// filterFields campos filtrables de un recurso y su modo de comparación.
type filterFields map[string]repository.MatchMode

var (
	saleFilters = filterFields{
		repository.FieldProduct: repository.MatchContains,
		repository.FieldType:    repository.MatchExact,
		repository.FieldStatus:  repository.MatchExact,
	}
	productFilters = filterFields{
		repository.FieldName:     repository.MatchContains,
		repository.FieldCategory: repository.MatchExact,
		repository.FieldActive:   repository.MatchExact,
	}
	pointOfSaleFilters = filterFields{
		repository.FieldName:         repository.MatchContains,
		repository.FieldAddress:      repository.MatchContains,
		repository.FieldNeighborhood: repository.MatchContains,
		repository.FieldCity:         repository.MatchExact,
		repository.FieldState:        repository.MatchExact,
		repository.FieldType:         repository.MatchExact,
		repository.FieldActive:       repository.MatchExact,
	}
)

// Campos admitidos por distinctValues.
var (
	saleDistinct        = []string{repository.FieldType, repository.FieldStatus, repository.FieldProduct}
	productDistinct     = []string{repository.FieldCategory}
	pointOfSaleDistinct = []string{repository.FieldType, repository.FieldCity, repository.FieldState}
)

// build convierte (field, value) del query string en un Filter.
// field vacío significa sin filtro.
func (ff filterFields) build(field, value string) (*repository.Filter, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, nil
	}
	mode, ok := ff[field]
	if !ok {
		return nil, domain.NewValidationError("field", "oneof", "debe ser uno de: "+strings.Join(ff.names(), " "))
	}
	if field == repository.FieldActive {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, domain.NewValidationError("value", "boolean", "debe ser true o false")
		}
		return &repository.Filter{Field: field, Value: b, Mode: mode}, nil
	}
	return &repository.Filter{Field: field, Value: value, Mode: mode}, nil
}

func (ff filterFields) names() []string {
	out := make([]string, 0, len(ff))
	for k := range ff {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func checkDistinctField(allowed []string, field string) error {
	for _, f := range allowed {
		if f == field {
			return nil
		}
	}
	return domain.NewValidationError("field", "oneof", "debe ser uno de: "+strings.Join(allowed, " "))
}
