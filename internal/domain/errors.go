package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Las capas superiores los
// comparan con errors.Is; los tipos de abajo agregan contexto sin romper eso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrUnknownReference   = errors.New("tienda o producto no existe")
	ErrMissingRemark      = errors.New("observación requerida")
	ErrTransitionRejected = errors.New("transición de estado rechazada")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// TransitionError detalla por qué el motor rechazó una transición:
// estado origen distinto al esperado o tipo de transacción incompatible.
type TransitionError struct {
	TransactionID string
	From          string // estado actual de la transacción
	To            string // estado destino solicitado
	Reason        string // predicado que falló
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transición %s -> %s rechazada para %s: %s", e.From, e.To, e.TransactionID, e.Reason)
}

// Unwrap permite errors.Is(err, ErrTransitionRejected).
func (e *TransitionError) Unwrap() error { return ErrTransitionRejected }

// StockShortageError se devuelve al confirmar una devolución cuando la tienda
// no tiene suficiente stock en estantería; expone los contadores actuales para
// que el administrador decida (ajustar cantidad o investigar).
type StockShortageError struct {
	StoreID   string
	ProductID string
	OnShelf   int
	Requested int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente en tienda %s producto %s: en estantería %d, solicitado %d",
		e.StoreID, e.ProductID, e.OnShelf, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *StockShortageError) Unwrap() error { return ErrInsufficientStock }
