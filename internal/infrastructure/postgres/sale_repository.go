package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sales-api/internal/domain"
	"github.com/jhoicas/sales-api/internal/domain/entity"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, user_id, product, quantity, unit_price, total, type, status, sale_date, notes, created_at, updated_at`

// saleFilterColumns lista blanca campo -> columna.
var saleFilterColumns = map[string]string{
	repository.FieldProduct: "product",
	repository.FieldType:    "type",
	repository.FieldStatus:  "status",
}

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con su total ya calculado.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.UserID, s.Product, s.Quantity, s.UnitPrice, s.Total, s.Type, s.Status,
		s.SaleDate, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if _, ok := parseID(id); !ok {
		return nil, nil
	}
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetByIDs carga todas las ventas con esos IDs, de cualquier dueño.
func (r *SaleRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Sale, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := parseID(id); ok {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []*entity.Sale{}, nil
	}
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = ANY($1::text[]::uuid[]) ORDER BY sale_date DESC, id`
	return r.list(ctx, query, valid)
}

// Update persiste todos los campos editables y el total recalculado.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales SET product = $2, quantity = $3, unit_price = $4, total = $5, type = $6,
			status = $7, sale_date = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.Product, s.Quantity, s.UnitPrice, s.Total, s.Type, s.Status, s.SaleDate, s.Notes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser ventas del usuario, fecha de venta descendente.
func (r *SaleRepo) ListByUser(ctx context.Context, userID string, filter *repository.Filter) ([]*entity.Sale, error) {
	where, value, err := filterClause(saleFilterColumns, filter, 2)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1` + where + ` ORDER BY sale_date DESC, id`
	if filter == nil {
		return r.list(ctx, query, userID)
	}
	return r.list(ctx, query, userID, value)
}

// DistinctValues valores no vacíos de la columna, ascendentes.
func (r *SaleRepo) DistinctValues(ctx context.Context, userID, field string) ([]string, error) {
	col, err := distinctColumn(saleFilterColumns, field)
	if err != nil {
		return nil, err
	}
	return queryStrings(ctx, r.q, distinctQuery("sales", col), userID)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.UserID, &s.Product, &s.Quantity, &s.UnitPrice, &s.Total, &s.Type, &s.Status,
		&s.SaleDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// queryStrings ejecuta una consulta de una sola columna de texto.
func queryStrings(ctx context.Context, q Querier, query string, args ...any) ([]string, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query values: %w", err)
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
