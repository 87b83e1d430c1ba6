package repository

import (
	"time"

	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
)

// TransactionFilter criterios de listado de transacciones de stock.
// Los campos vacíos no filtran.
type TransactionFilter struct {
	Status    entity.TransactionStatus
	Type      entity.TransactionType
	StoreID   string
	ProductID string
	ActorID   string // requested_by
	From      *time.Time
	To        *time.Time
}

// TransactionListItem fila de listado con referencias resueltas para pantallas.
type TransactionListItem struct {
	entity.StockTransaction
	StoreName   string
	ProductSKU  string
	ProductName string
}

// StockTransactionRepository puerto de persistencia del log de transacciones.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para que el motor de
// transiciones verifique el estado y lo mute como unidad indivisible.
type StockTransactionRepository interface {
	Create(txn *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	GetForUpdate(id string) (*entity.StockTransaction, error)
	// UpdateStatus persiste estado, observación del admin y sello decided_by/decided_at.
	// Nunca toca quantity ni las referencias: son inmutables desde la creación.
	UpdateStatus(txn *entity.StockTransaction) error
	List(filter TransactionFilter, limit, offset int) ([]*TransactionListItem, int, error)
}
