package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto o SKU del catálogo (dato de referencia, solo lectura aquí).
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Price       decimal.Decimal // precio de lista
	UnitMeasure string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
