package repository

// MatchMode indica cómo se compara el valor de un filtro.
type MatchMode int

const (
	// MatchExact igualdad exacta (tipo, estado, ciudad, activo...).
	MatchExact MatchMode = iota
	// MatchContains subcadena sin distinguir mayúsculas (nombre, dirección, barrio).
	MatchContains
)

// Campos filtrables. Cada repositorio acepta solo los que tienen columna propia.
const (
	FieldName         = "name"
	FieldProduct      = "product"
	FieldAddress      = "address"
	FieldNeighborhood = "neighborhood"
	FieldCity         = "city"
	FieldState        = "state"
	FieldType         = "type"
	FieldStatus       = "status"
	FieldCategory     = "category"
	FieldActive       = "active"
)

// Filter restringe un listado que siempre está acotado al dueño.
// Value es string salvo para FieldActive, que es bool.
type Filter struct {
	Field string
	Value any
	Mode  MatchMode
}
