package ledger

import (
	"context"

	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que verificación de precondiciones,
// deltas de contadores y cambio de estado se confirmen como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.StockTransactionRepository,
		ledgerRepo repository.LedgerRepository,
		aggRepo repository.ProductAggregateRepository,
	) error) error
}
