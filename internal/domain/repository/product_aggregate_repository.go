package repository

import "github.com/jhoicas/CampoStock-api/internal/domain/entity"

// ProductAggregateRepository puerto del agregado de bodega por producto.
type ProductAggregateRepository interface {
	Get(productID string) (*entity.ProductAggregate, error)
	// AddToWarehouseStock suma delta (puede ser negativo) de forma atómica,
	// creando la fila si no existe.
	AddToWarehouseStock(productID string, delta int) error
}
