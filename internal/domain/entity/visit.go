package entity

import "time"

// Visit visita de terreno a una tienda; las transacciones de stock referencian
// la visita en la que se originaron. La elegibilidad tienda-empleado la valida
// el módulo de asignaciones, no este subsistema.
type Visit struct {
	ID         string
	StoreID    string
	EmployeeID string
	VisitedAt  time.Time
	CreatedAt  time.Time
}
