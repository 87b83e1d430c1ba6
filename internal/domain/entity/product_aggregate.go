package entity

import "time"

// ProductAggregate contador agregado de bodega por producto, para reporte de
// alto nivel. Regla única de signo: una entrega mueve stock de bodega a tienda
// (resta), una devolución lo regresa (suma). Puede ser negativo: es un neto de
// reporte, no un contador físico.
type ProductAggregate struct {
	ProductID      string
	WarehouseStock int
	UpdatedAt      time.Time
}
