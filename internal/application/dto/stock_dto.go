package dto

import (
	"time"

	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

// SubmitTransactionRequest body para POST /api/stock-transactions.
// El actor solicitante viene del middleware (X-Actor-ID), no del body.
type SubmitTransactionRequest struct {
	StoreID   string `json:"store_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	VisitID   string `json:"visit_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=restock return"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Remark    string `json:"remark,omitempty"`
}

// DecisionRequest body para las acciones de decisión (approve/reject/delivered/returned).
type DecisionRequest struct {
	Remark string `json:"remark,omitempty"`
}

// BulkApproveRequest body para POST /api/stock-transactions/bulk-approve.
type BulkApproveRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1,dive,required"`
	Remark string   `json:"remark,omitempty"`
}

// TransactionDTO representación de una transacción de stock en respuestas.
type TransactionDTO struct {
	ID            string     `json:"id"`
	StoreID       string     `json:"store_id"`
	StoreName     string     `json:"store_name,omitempty"`
	ProductID     string     `json:"product_id"`
	ProductSKU    string     `json:"product_sku,omitempty"`
	ProductName   string     `json:"product_name,omitempty"`
	RequestedBy   string     `json:"requested_by"`
	OriginVisitID string     `json:"origin_visit_id"`
	Type          string     `json:"type"`
	Quantity      int        `json:"quantity"`
	Status        string     `json:"status"`
	Remark        string     `json:"remark,omitempty"`
	AdminRemark   string     `json:"admin_remark,omitempty"`
	DecidedBy     *string    `json:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewTransactionDTO mapea la entidad a DTO.
func NewTransactionDTO(txn *entity.StockTransaction) TransactionDTO {
	return TransactionDTO{
		ID:            txn.ID,
		StoreID:       txn.StoreID,
		ProductID:     txn.ProductID,
		RequestedBy:   txn.RequestedBy,
		OriginVisitID: txn.OriginVisitID,
		Type:          string(txn.Type),
		Quantity:      txn.Quantity,
		Status:        string(txn.Status),
		Remark:        txn.Remark,
		AdminRemark:   txn.AdminRemark,
		DecidedBy:     txn.DecidedBy,
		DecidedAt:     txn.DecidedAt,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}
}

// NewTransactionListDTO mapea una fila de listado (con referencias resueltas).
func NewTransactionListDTO(item *repository.TransactionListItem) TransactionDTO {
	out := NewTransactionDTO(&item.StockTransaction)
	out.StoreName = item.StoreName
	out.ProductSKU = item.ProductSKU
	out.ProductName = item.ProductName
	return out
}

// LedgerDTO contadores de un par (tienda, producto).
type LedgerDTO struct {
	StoreID         string `json:"store_id"`
	ProductID       string `json:"product_id"`
	OnShelf         int    `json:"on_shelf"`
	PendingDelivery int    `json:"pending_delivery"`
	PendingReturn   int    `json:"pending_return"`
}

// NewLedgerDTO mapea la entrada del ledger a DTO.
func NewLedgerDTO(entry *entity.LedgerEntry) LedgerDTO {
	return LedgerDTO{
		StoreID:         entry.StoreID,
		ProductID:       entry.ProductID,
		OnShelf:         entry.OnShelf,
		PendingDelivery: entry.PendingDelivery,
		PendingReturn:   entry.PendingReturn,
	}
}

// AggregateDTO agregado de bodega de un producto.
type AggregateDTO struct {
	ProductID      string `json:"product_id"`
	WarehouseStock int    `json:"warehouse_stock"`
}

// BulkApproveResponse resultado de la aprobación masiva.
type BulkApproveResponse struct {
	TransitionedCount int `json:"transitioned_count"`
}
