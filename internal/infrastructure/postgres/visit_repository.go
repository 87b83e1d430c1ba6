package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo lectura de visitas sobre PostgreSQL (referencia).
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// GetByID obtiene una visita por id. Devuelve nil si no existe.
func (r *VisitRepo) GetByID(id string) (*entity.Visit, error) {
	query := `SELECT id, store_id, employee_id, visited_at, created_at FROM visits WHERE id = $1`
	var v entity.Visit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.StoreID, &v.EmployeeID, &v.VisitedAt, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return &v, nil
}

// ListByStore lista las visitas de una tienda, más recientes primero.
func (r *VisitRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Visit, error) {
	query := `
		SELECT id, store_id, employee_id, visited_at, created_at
		FROM visits WHERE store_id = $1
		ORDER BY visited_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visits by store: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visit
	for rows.Next() {
		var v entity.Visit
		if err := rows.Scan(&v.ID, &v.StoreID, &v.EmployeeID, &v.VisitedAt, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
