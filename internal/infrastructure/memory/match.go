// Package memory implementa los repositorios en memoria del proceso
// (STORAGE_DRIVER=memory y tests). Cada store protege su mapa con un RWMutex
// y guarda copias, de modo que los llamadores nunca comparten punteros.
package memory

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

var fold = cases.Fold()

// containsFold compara sin distinguir mayúsculas, con plegado Unicode (São = SÃO).
func containsFold(haystack, needle string) bool {
	return strings.Contains(fold.String(haystack), fold.String(needle))
}

// fieldGetter devuelve el valor textual de un campo filtrable, o false si la entidad no lo tiene.
type fieldGetter[P any] func(e P, field string) (string, bool)

// matches evalúa el filtro sobre una entidad. FieldActive compara como bool.
func matches[P any](e P, f *repository.Filter, get fieldGetter[P], active func(P) bool) (bool, error) {
	if f == nil {
		return true, nil
	}
	if f.Field == repository.FieldActive {
		if active == nil {
			return false, unknownField(f.Field)
		}
		want, ok := f.Value.(bool)
		if !ok {
			return false, domain.NewValidationError("value", "boolean", "debe ser true o false")
		}
		return active(e) == want, nil
	}
	got, ok := get(e, f.Field)
	if !ok {
		return false, unknownField(f.Field)
	}
	want := fmt.Sprint(f.Value)
	if f.Mode == repository.MatchContains {
		return containsFold(got, want), nil
	}
	return got == want, nil
}

// distinct devuelve los valores no vacíos ordenados ascendentemente, sin repetir.
func distinct[P any](items []P, field string, get fieldGetter[P]) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range items {
		v, ok := get(it, field)
		if !ok {
			return nil, unknownField(field)
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out, nil
}

func unknownField(field string) error {
	return domain.NewValidationError("field", "oneof", "campo de filtro no soportado: "+field)
}
