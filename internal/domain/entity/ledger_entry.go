package entity

import "time"

// LedgerEntry contadores de inventario de un producto en una tienda.
// Los tres contadores son siempre >= 0; toda mutación pasa por el motor de
// transiciones dentro de una transacción de BD con bloqueo de fila.
type LedgerEntry struct {
	StoreID         string
	ProductID       string
	OnShelf         int // cantidad física vendible en la tienda
	PendingDelivery int // reservado por restocks sin resolver
	PendingReturn   int // reservado por returns sin resolver
	UpdatedAt       time.Time
}
