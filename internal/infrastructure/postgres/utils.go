package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// isSerializationFailure conflicto de una transacción REPEATABLE READ (40001); se puede reintentar.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001"
	}
	return false
}

// parseID convierte el ID a UUID; un ID mal formado no puede existir en la tabla.
func parseID(id string) (uuid.UUID, bool) {
	u, err := uuid.Parse(id)
	return u, err == nil
}

// filterClause traduce el filtro a SQL usando solo columnas de la lista blanca.
// argPos es la posición ($n) del parámetro del valor.
func filterClause(columns map[string]string, f *repository.Filter, argPos int) (string, any, error) {
	if f == nil {
		return "", nil, nil
	}
	col, ok := columns[f.Field]
	if !ok {
		return "", nil, domain.NewValidationError("field", "oneof", "campo de filtro no soportado: "+f.Field)
	}
	if f.Field == repository.FieldActive {
		b, ok := f.Value.(bool)
		if !ok {
			return "", nil, domain.NewValidationError("value", "boolean", "debe ser true o false")
		}
		return fmt.Sprintf(" AND %s = $%d", col, argPos), b, nil
	}
	value := fmt.Sprint(f.Value)
	if f.Mode == repository.MatchContains {
		// position() evita tener que escapar % y _ de ILIKE.
		return fmt.Sprintf(" AND position(lower($%d) in lower(%s)) > 0", argPos, col), value, nil
	}
	return fmt.Sprintf(" AND %s = $%d", col, argPos), value, nil
}

// distinctColumn valida el campo para SELECT DISTINCT.
func distinctColumn(columns map[string]string, field string) (string, error) {
	col, ok := columns[field]
	if !ok || field == repository.FieldActive {
		return "", domain.NewValidationError("field", "oneof", "campo no soportado: "+field)
	}
	return col, nil
}

func distinctQuery(table, col string) string {
	return fmt.Sprintf("SELECT DISTINCT %[2]s FROM %[1]s WHERE user_id = $1 AND btrim(%[2]s) <> '' ORDER BY %[2]s", table, col)
}
