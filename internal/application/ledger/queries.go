package ledger

import (
	"context"

	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

// QueryUseCase lecturas del ledger y del log de transacciones (sin bloqueos:
// consumo de pantallas de reporte y del flujo de aprobación).
type QueryUseCase struct {
	txnRepo    repository.StockTransactionRepository
	ledgerRepo repository.LedgerRepository
	aggRepo    repository.ProductAggregateRepository
}

// NewQueryUseCase construye el caso de uso con repositorios atados al pool.
func NewQueryUseCase(
	txnRepo repository.StockTransactionRepository,
	ledgerRepo repository.LedgerRepository,
	aggRepo repository.ProductAggregateRepository,
) *QueryUseCase {
	return &QueryUseCase{txnRepo: txnRepo, ledgerRepo: ledgerRepo, aggRepo: aggRepo}
}

// GetLedger devuelve los contadores de un par (tienda, producto); si la entrada
// no se ha materializado todavía, devuelve contadores en cero.
func (uc *QueryUseCase) GetLedger(ctx context.Context, storeID, productID string) (*entity.LedgerEntry, error) {
	return uc.ledgerRepo.Get(storeID, productID)
}

// ListStoreLedger lista las entradas del ledger de una tienda.
func (uc *QueryUseCase) ListStoreLedger(ctx context.Context, storeID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	return uc.ledgerRepo.ListByStore(storeID, limit, offset)
}

// GetAggregate devuelve el agregado de bodega de un producto (cero si no existe).
func (uc *QueryUseCase) GetAggregate(ctx context.Context, productID string) (*entity.ProductAggregate, error) {
	return uc.aggRepo.Get(productID)
}

// GetTransaction devuelve una transacción por id.
func (uc *QueryUseCase) GetTransaction(ctx context.Context, id string) (*entity.StockTransaction, error) {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	return txn, nil
}

// ListTransactions lista transacciones con filtros y paginación; devuelve
// también el total para la paginación del cliente.
func (uc *QueryUseCase) ListTransactions(ctx context.Context, filter repository.TransactionFilter, limit, offset int) ([]*repository.TransactionListItem, int, error) {
	return uc.txnRepo.List(filter, limit, offset)
}
