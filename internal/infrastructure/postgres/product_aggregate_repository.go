package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

var _ repository.ProductAggregateRepository = (*ProductAggregateRepo)(nil)

// ProductAggregateRepo implementación del agregado de bodega sobre PostgreSQL
// (usable con pool o tx).
type ProductAggregateRepo struct {
	q Querier
}

// NewProductAggregateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductAggregateRepository(q Querier) *ProductAggregateRepo {
	return &ProductAggregateRepo{q: q}
}

// Get obtiene el agregado de un producto; cero si no existe.
func (r *ProductAggregateRepo) Get(productID string) (*entity.ProductAggregate, error) {
	query := `
		SELECT product_id, warehouse_stock, updated_at
		FROM product_aggregates WHERE product_id = $1`
	var a entity.ProductAggregate
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&a.ProductID, &a.WarehouseStock, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ProductAggregate{ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get product aggregate: %w", err)
	}
	return &a, nil
}

// AddToWarehouseStock suma delta al agregado de forma atómica, creando la fila
// si no existe. El incremento relativo en SQL evita leer-modificar-escribir.
func (r *ProductAggregateRepo) AddToWarehouseStock(productID string, delta int) error {
	query := `
		INSERT INTO product_aggregates (product_id, warehouse_stock, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET warehouse_stock = product_aggregates.warehouse_stock + EXCLUDED.warehouse_stock,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, delta)
	if err != nil {
		return fmt.Errorf("add to warehouse stock: %w", err)
	}
	return nil
}
