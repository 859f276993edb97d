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

var _ repository.PointOfSaleRepository = (*PointOfSaleRepo)(nil)

const pointOfSaleColumns = `id, user_id, name, address, neighborhood, city, state, postal_code, phone, email,
	manager, type, active, notes, created_at, updated_at`

var pointOfSaleFilterColumns = map[string]string{
	repository.FieldName:         "name",
	repository.FieldAddress:      "address",
	repository.FieldNeighborhood: "neighborhood",
	repository.FieldCity:         "city",
	repository.FieldState:        "state",
	repository.FieldType:         "type",
	repository.FieldActive:       "active",
}

// PointOfSaleRepo implementación del puerto PointOfSaleRepository sobre PostgreSQL.
type PointOfSaleRepo struct {
	q Querier
}

// NewPointOfSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPointOfSaleRepository(q Querier) *PointOfSaleRepo {
	return &PointOfSaleRepo{q: q}
}

func (r *PointOfSaleRepo) Create(ctx context.Context, p *entity.PointOfSale) error {
	query := `INSERT INTO points_of_sale (` + pointOfSaleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.Address, p.Neighborhood, p.City, p.State, p.PostalCode, p.Phone, p.Email,
		p.Manager, p.Type, p.Active, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert point of sale: %w", err)
	}
	return nil
}

func (r *PointOfSaleRepo) GetByID(ctx context.Context, id string) (*entity.PointOfSale, error) {
	if _, ok := parseID(id); !ok {
		return nil, nil
	}
	p, err := scanPointOfSale(r.q.QueryRow(ctx, `SELECT `+pointOfSaleColumns+` FROM points_of_sale WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get point of sale: %w", err)
	}
	return p, nil
}

func (r *PointOfSaleRepo) Update(ctx context.Context, p *entity.PointOfSale) error {
	query := `
		UPDATE points_of_sale SET name = $2, address = $3, neighborhood = $4, city = $5, state = $6,
			postal_code = $7, phone = $8, email = $9, manager = $10, type = $11, active = $12, notes = $13,
			updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Address, p.Neighborhood, p.City, p.State, p.PostalCode, p.Phone, p.Email,
		p.Manager, p.Type, p.Active, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update point of sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PointOfSaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM points_of_sale WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete point of sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser PDVs del usuario, creación descendente.
func (r *PointOfSaleRepo) ListByUser(ctx context.Context, userID string, filter *repository.Filter) ([]*entity.PointOfSale, error) {
	where, value, err := filterClause(pointOfSaleFilterColumns, filter, 2)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + pointOfSaleColumns + ` FROM points_of_sale WHERE user_id = $1` + where + ` ORDER BY created_at DESC, id`
	args := []any{userID}
	if filter != nil {
		args = append(args, value)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list points of sale: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.PointOfSale, 0)
	for rows.Next() {
		p, err := scanPointOfSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan point of sale: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PointOfSaleRepo) DistinctValues(ctx context.Context, userID, field string) ([]string, error) {
	col, err := distinctColumn(pointOfSaleFilterColumns, field)
	if err != nil {
		return nil, err
	}
	return queryStrings(ctx, r.q, distinctQuery("points_of_sale", col), userID)
}

func scanPointOfSale(row pgx.Row) (*entity.PointOfSale, error) {
	var p entity.PointOfSale
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Address, &p.Neighborhood, &p.City, &p.State, &p.PostalCode, &p.Phone,
		&p.Email, &p.Manager, &p.Type, &p.Active, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
