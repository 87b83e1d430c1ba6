package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
	"github.com/jhoicas/CampoStock-api/pkg/logger"
)

// ApprovalUseCase superficie administrativa sobre el motor de transiciones:
// aprobar, rechazar, confirmar entrega/devolución y aprobación masiva. Cada
// operación corre en una transacción de BD con la fila de la transacción y la
// del ledger bloqueadas; dos decisiones concurrentes sobre el mismo id hacen
// que exactamente una gane y la otra reciba TransitionRejected.
type ApprovalUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewApprovalUseCase construye el caso de uso.
func NewApprovalUseCase(txRunner TxRunner, log *logger.Logger) *ApprovalUseCase {
	return &ApprovalUseCase{txRunner: txRunner, log: log}
}

// Approve pasa una transacción pending a approved. Sin efecto sobre contadores.
func (uc *ApprovalUseCase) Approve(ctx context.Context, id, decidedBy, remark string) error {
	_, err := uc.transition(ctx, id, entity.StatusApproved, decidedBy, remark)
	return err
}

// Reject pasa una transacción pending a rejected y libera la reserva pendiente.
// La observación es obligatoria: el solicitante necesita saber el motivo.
func (uc *ApprovalUseCase) Reject(ctx context.Context, id, decidedBy, remark string) error {
	if strings.TrimSpace(remark) == "" {
		return domain.ErrMissingRemark
	}
	_, err := uc.transition(ctx, id, entity.StatusRejected, decidedBy, remark)
	return err
}

// MarkDelivered confirma la entrega de un restock approved: suma a estantería,
// libera pending_delivery y descuenta el agregado de bodega. Devuelve los
// contadores resultantes del par (tienda, producto).
func (uc *ApprovalUseCase) MarkDelivered(ctx context.Context, id, decidedBy, remark string) (*entity.LedgerEntry, error) {
	return uc.transition(ctx, id, entity.StatusDelivered, decidedBy, remark)
}

// MarkReturned confirma el retiro de un return approved: resta de estantería
// (guardado por on_shelf >= cantidad), libera pending_return y suma al agregado
// de bodega. Devuelve los contadores resultantes.
func (uc *ApprovalUseCase) MarkReturned(ctx context.Context, id, decidedBy, remark string) (*entity.LedgerEntry, error) {
	return uc.transition(ctx, id, entity.StatusReturned, decidedBy, remark)
}

// BulkApprove aprueba todas las transacciones del conjunto que sigan pending,
// saltando (sin error) las que no lo estén o no existan. Devuelve cuántas
// cambiaron de estado efectivamente.
func (uc *ApprovalUseCase) BulkApprove(ctx context.Context, ids []string, decidedBy, remark string) (int, error) {
	// Orden estable antes de bloquear filas: dos bulk concurrentes con conjuntos
	// traslapados adquieren los locks en el mismo orden.
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	count := 0
	err := uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		_ repository.LedgerRepository,
		_ repository.ProductAggregateRepository,
	) error {
		now := time.Now()
		for _, id := range sorted {
			txn, err := txnRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if txn == nil || txn.Status != entity.StatusPending {
				continue
			}
			txn.Status = entity.StatusApproved
			txn.AdminRemark = remark
			txn.DecidedBy = &decidedBy
			txn.DecidedAt = &now
			txn.UpdatedAt = now
			if err := txnRepo.UpdateStatus(txn); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.log.Info().
		Int("requested", len(ids)).
		Int("transitioned", count).
		Str("decided_by", decidedBy).
		Msg("aprobación masiva aplicada")

	return count, nil
}

// transition ejecuta una transición completa como unidad atómica: bloquea la
// transacción, valida precondiciones, bloquea la fila del ledger, aplica los
// deltas, ajusta el agregado de bodega y sella la decisión. Cualquier fallo
// deshace todo (rollback del TxRunner).
func (uc *ApprovalUseCase) transition(ctx context.Context, id string, to entity.TransactionStatus, decidedBy, remark string) (*entity.LedgerEntry, error) {
	var result *entity.LedgerEntry

	err := uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		ledgerRepo repository.LedgerRepository,
		aggRepo repository.ProductAggregateRepository,
	) error {
		// Orden de bloqueo fijo: primero la transacción, después el ledger.
		txn, err := txnRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if txn == nil {
			return domain.ErrNotFound
		}

		entry, err := ledgerRepo.GetForUpdate(txn.StoreID, txn.ProductID)
		if err != nil {
			return err
		}

		effect, err := planTransition(txn, to, entry.OnShelf)
		if err != nil {
			return err
		}

		now := time.Now()
		if effect != (transitionEffect{}) {
			if err := effect.apply(entry); err != nil {
				return err
			}
			entry.UpdatedAt = now
			if err := ledgerRepo.Upsert(entry); err != nil {
				return err
			}
		}
		if effect.warehouse != 0 {
			if err := aggRepo.AddToWarehouseStock(txn.ProductID, effect.warehouse); err != nil {
				return err
			}
		}

		txn.Status = to
		txn.AdminRemark = remark
		txn.DecidedBy = &decidedBy
		txn.DecidedAt = &now
		txn.UpdatedAt = now
		if err := txnRepo.UpdateStatus(txn); err != nil {
			return err
		}

		result = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", id).
		Str("status", string(to)).
		Str("decided_by", decidedBy).
		Msg("transición de stock confirmada")

	return result, nil
}
