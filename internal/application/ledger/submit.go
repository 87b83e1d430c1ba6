package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
	"github.com/jhoicas/CampoStock-api/pkg/logger"
)

// SubmitTransactionUseCase crea transacciones pending desde terreno y reserva
// el contador pendiente correspondiente en el ledger, todo en una transacción
// de BD. La elegibilidad tienda-empleado de la visita la valida el módulo de
// asignaciones antes de llamar aquí.
type SubmitTransactionUseCase struct {
	txRunner    TxRunner
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewSubmitTransactionUseCase construye el caso de uso.
func NewSubmitTransactionUseCase(
	txRunner TxRunner,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *SubmitTransactionUseCase {
	return &SubmitTransactionUseCase{
		txRunner:    txRunner,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// SubmitInput entrada para crear una transacción de stock.
type SubmitInput struct {
	StoreID     string
	ProductID   string
	VisitID     string
	RequestedBy string
	Type        entity.TransactionType
	Quantity    int
	Remark      string
}

// Submit valida la entrada, verifica referencias y crea la transacción pending
// incrementando pending_delivery (restock) o pending_return (return) del par
// (tienda, producto); la entrada del ledger se materializa en cero si no existe.
// Devuelve el id de la transacción creada.
func (uc *SubmitTransactionUseCase) Submit(ctx context.Context, input SubmitInput) (string, error) {
	if input.Quantity <= 0 {
		return "", domain.ErrInvalidQuantity
	}
	if !input.Type.Valid() {
		return "", domain.ErrInvalidInput
	}
	if strings.TrimSpace(input.StoreID) == "" || strings.TrimSpace(input.ProductID) == "" ||
		strings.TrimSpace(input.RequestedBy) == "" {
		return "", domain.ErrInvalidInput
	}

	// Verificación de referencias fuera de la transacción (solo lectura).
	store, err := uc.storeRepo.GetByID(input.StoreID)
	if err != nil {
		return "", err
	}
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return "", err
	}
	if store == nil || product == nil {
		return "", domain.ErrUnknownReference
	}

	now := time.Now()
	txn := &entity.StockTransaction{
		ID:            uuid.New().String(),
		StoreID:       input.StoreID,
		ProductID:     input.ProductID,
		RequestedBy:   input.RequestedBy,
		OriginVisitID: input.VisitID,
		Type:          input.Type,
		Quantity:      input.Quantity,
		Status:        entity.StatusPending,
		Remark:        input.Remark,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.ProductAggregateRepository,
	) error {
		// Bloquea la fila del ledger para serializar con transiciones concurrentes
		// sobre el mismo par (tienda, producto).
		entry, err := ledgerRepo.GetForUpdate(input.StoreID, input.ProductID)
		if err != nil {
			return err
		}
		if input.Type == entity.TypeRestock {
			entry.PendingDelivery += input.Quantity
		} else {
			entry.PendingReturn += input.Quantity
		}
		entry.UpdatedAt = now
		if err := ledgerRepo.Upsert(entry); err != nil {
			return err
		}
		return txnRepo.Create(txn)
	})
	if err != nil {
		return "", err
	}

	uc.log.Info().
		Str("transaction_id", txn.ID).
		Str("store_id", txn.StoreID).
		Str("product_id", txn.ProductID).
		Str("type", string(txn.Type)).
		Int("quantity", txn.Quantity).
		Msg("transacción de stock creada")

	return txn.ID, nil
}
