package entity

import "time"

// TransactionType tipo de movimiento solicitado desde terreno.
type TransactionType string

const (
	TypeRestock TransactionType = "restock" // entrega de reposición hacia la tienda
	TypeReturn  TransactionType = "return"  // retiro de devolución desde la tienda
)

// Valid indica si el tipo es uno de los conocidos.
func (t TransactionType) Valid() bool {
	return t == TypeRestock || t == TypeReturn
}

// TransactionStatus estado del ciclo de vida de una transacción de stock.
// Enumeración cerrada: el motor de transiciones es la única pieza que la muta.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusApproved  TransactionStatus = "approved"
	StatusDelivered TransactionStatus = "delivered" // terminal (restock)
	StatusReturned  TransactionStatus = "returned"  // terminal (return)
	StatusRejected  TransactionStatus = "rejected"  // terminal (ambos tipos)
)

// Valid indica si el estado es uno de los conocidos.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDelivered, StatusReturned, StatusRejected:
		return true
	}
	return false
}

// Terminal indica si desde el estado no se permite ninguna transición más.
func (s TransactionStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusReturned || s == StatusRejected
}

// StockTransaction registra una solicitud de movimiento de stock creada en una
// visita de terreno. Se crea en pending, solo cambia de estado (nunca se borra:
// es el rastro de auditoría) y su cantidad es inmutable después de la creación.
type StockTransaction struct {
	ID            string
	StoreID       string
	ProductID     string
	RequestedBy   string // empleado de terreno que la solicitó
	OriginVisitID string // visita durante la cual se creó
	Type          TransactionType
	Quantity      int // siempre > 0
	Status        TransactionStatus
	Remark        string  // observación del solicitante
	AdminRemark   string  // observación del administrador al decidir
	DecidedBy     *string // administrador que decidió (nil mientras pending)
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
