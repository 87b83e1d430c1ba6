package repository

import "github.com/jhoicas/CampoStock-api/internal/domain/entity"

// LedgerRepository puerto del libro de inventario por (tienda, producto).
// Get devuelve una entrada con contadores en cero si la fila no existe todavía
// (creación perezosa: las lecturas nunca materializan nada).
type LedgerRepository interface {
	Get(storeID, productID string) (*entity.LedgerEntry, error)
	// GetForUpdate materializa la fila si hace falta y la bloquea; usar dentro
	// de transacciones. Una fila inexistente no se puede bloquear, así que la
	// materialización es parte de adquirir el lock.
	GetForUpdate(storeID, productID string) (*entity.LedgerEntry, error)
	Upsert(entry *entity.LedgerEntry) error
	ListByStore(storeID string, limit, offset int) ([]*entity.LedgerEntry, error)
}
