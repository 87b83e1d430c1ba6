package ledger

import (
	"fmt"

	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
)

// Motor de transiciones del ciclo de vida:
//
//	pending -> approved -> delivered (restock) | returned (return)
//	pending -> rejected
//
// approved -> rejected NO está permitido: una vez aprobada, la transacción debe
// llegar a su terminal según su tipo. Cada transición calcula aquí el delta
// completo de contadores; ningún otro código suma o resta al ledger.

// transitionEffect deltas a aplicar sobre LedgerEntry y ProductAggregate.
type transitionEffect struct {
	onShelf         int
	pendingDelivery int
	pendingReturn   int
	warehouse       int // agregado de bodega: entrega resta, devolución suma
}

// planTransition valida las precondiciones de la transición y devuelve el
// efecto sobre los contadores. Función pura: no persiste nada. onShelf es el
// valor actual leído bajo bloqueo de fila, necesario para el guardia de
// devolución (una tienda no puede devolver más de lo que tiene en estantería).
func planTransition(txn *entity.StockTransaction, to entity.TransactionStatus, onShelf int) (transitionEffect, error) {
	reject := func(reason string) (transitionEffect, error) {
		return transitionEffect{}, &domain.TransitionError{
			TransactionID: txn.ID,
			From:          string(txn.Status),
			To:            string(to),
			Reason:        reason,
		}
	}

	switch to {
	case entity.StatusApproved:
		if txn.Status != entity.StatusPending {
			return reject(fmt.Sprintf("estado origen debe ser pending, es %s", txn.Status))
		}
		// Los contadores pendientes ya reflejan la solicitud desde la creación.
		return transitionEffect{}, nil

	case entity.StatusRejected:
		if txn.Status != entity.StatusPending {
			return reject(fmt.Sprintf("estado origen debe ser pending, es %s", txn.Status))
		}
		// Único camino que revierte la reserva pendiente.
		if txn.Type == entity.TypeRestock {
			return transitionEffect{pendingDelivery: -txn.Quantity}, nil
		}
		return transitionEffect{pendingReturn: -txn.Quantity}, nil

	case entity.StatusDelivered:
		if txn.Status != entity.StatusApproved {
			return reject(fmt.Sprintf("estado origen debe ser approved, es %s", txn.Status))
		}
		if txn.Type != entity.TypeRestock {
			return reject("solo una transacción restock puede marcarse delivered")
		}
		return transitionEffect{
			onShelf:         txn.Quantity,
			pendingDelivery: -txn.Quantity,
			warehouse:       -txn.Quantity,
		}, nil

	case entity.StatusReturned:
		if txn.Status != entity.StatusApproved {
			return reject(fmt.Sprintf("estado origen debe ser approved, es %s", txn.Status))
		}
		if txn.Type != entity.TypeReturn {
			return reject("solo una transacción return puede marcarse returned")
		}
		if onShelf < txn.Quantity {
			return transitionEffect{}, &domain.StockShortageError{
				StoreID:   txn.StoreID,
				ProductID: txn.ProductID,
				OnShelf:   onShelf,
				Requested: txn.Quantity,
			}
		}
		return transitionEffect{
			onShelf:       -txn.Quantity,
			pendingReturn: -txn.Quantity,
			warehouse:     txn.Quantity,
		}, nil
	}

	return reject("estado destino desconocido")
}

// apply suma el efecto a la entrada del ledger verificando el invariante de no
// negatividad. Un contador negativo aquí significa un bug del motor, no un
// error del cliente, por eso no es un error de dominio.
func (e transitionEffect) apply(entry *entity.LedgerEntry) error {
	entry.OnShelf += e.onShelf
	entry.PendingDelivery += e.pendingDelivery
	entry.PendingReturn += e.pendingReturn
	if entry.OnShelf < 0 || entry.PendingDelivery < 0 || entry.PendingReturn < 0 {
		return fmt.Errorf("invariante violado en ledger (%s,%s): on_shelf=%d pending_delivery=%d pending_return=%d",
			entry.StoreID, entry.ProductID, entry.OnShelf, entry.PendingDelivery, entry.PendingReturn)
	}
	return nil
}
