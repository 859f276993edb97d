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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, user_id, code, name, description, category, price, stock, manufacturer, unit, active, created_at, updated_at`

var productFilterColumns = map[string]string{
	repository.FieldName:     "name",
	repository.FieldCategory: "category",
	repository.FieldActive:   "active",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// El índice único (user_id, code) respalda la unicidad por usuario.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, p.Code, p.Name, p.Description, p.Category, p.Price, p.Stock,
		p.Manufacturer, p.Unit, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if _, ok := parseID(id); !ok {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByUserAndCode obtiene un producto por dueño y código.
func (r *ProductRepo) GetByUserAndCode(ctx context.Context, userID, code string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE user_id = $1 AND code = $2`, userID, code)
}

// Update reemplaza los campos editables.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET code = $2, name = $3, description = $4, category = $5, price = $6, stock = $7,
			manufacturer = $8, unit = $9, active = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Code, p.Name, p.Description, p.Category, p.Price, p.Stock,
		p.Manufacturer, p.Unit, p.Active, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser productos del usuario, creación descendente.
func (r *ProductRepo) ListByUser(ctx context.Context, userID string, filter *repository.Filter) ([]*entity.Product, error) {
	where, value, err := filterClause(productFilterColumns, filter, 2)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1` + where + ` ORDER BY created_at DESC, id`
	if filter == nil {
		return r.list(ctx, query, userID)
	}
	return r.list(ctx, query, userID, value)
}

// DistinctValues valores no vacíos de la columna, ascendentes.
func (r *ProductRepo) DistinctValues(ctx context.Context, userID, field string) ([]string, error) {
	col, err := distinctColumn(productFilterColumns, field)
	if err != nil {
		return nil, err
	}
	return queryStrings(ctx, r.q, distinctQuery("products", col), userID)
}

// ListLowStock productos con stock <= threshold, stock ascendente.
func (r *ProductRepo) ListLowStock(ctx context.Context, userID string, threshold int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND stock <= $2 ORDER BY stock ASC, created_at DESC`
	return r.list(ctx, query, userID, threshold)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.UserID, &p.Code, &p.Name, &p.Description, &p.Category, &p.Price, &p.Stock,
		&p.Manufacturer, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
