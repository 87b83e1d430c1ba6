package ledger

import (
	"errors"
	"testing"

	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txnWith(tipo entity.TransactionType, status entity.TransactionStatus, qty int) *entity.StockTransaction {
	return &entity.StockTransaction{
		ID:        "txn-1",
		StoreID:   "store-1",
		ProductID: "prod-1",
		Type:      tipo,
		Quantity:  qty,
		Status:    status,
	}
}

func TestPlanTransition_TablaCompleta(t *testing.T) {
	cases := []struct {
		name    string
		tipo    entity.TransactionType
		from    entity.TransactionStatus
		to      entity.TransactionStatus
		onShelf int
		want    transitionEffect
		wantErr error
	}{
		{
			name: "pending a approved no toca contadores",
			tipo: entity.TypeRestock, from: entity.StatusPending, to: entity.StatusApproved,
			want: transitionEffect{},
		},
		{
			name: "pending a rejected libera pending_delivery",
			tipo: entity.TypeRestock, from: entity.StatusPending, to: entity.StatusRejected,
			want: transitionEffect{pendingDelivery: -20},
		},
		{
			name: "pending a rejected libera pending_return",
			tipo: entity.TypeReturn, from: entity.StatusPending, to: entity.StatusRejected,
			want: transitionEffect{pendingReturn: -20},
		},
		{
			name: "approved restock a delivered",
			tipo: entity.TypeRestock, from: entity.StatusApproved, to: entity.StatusDelivered,
			want: transitionEffect{onShelf: 20, pendingDelivery: -20, warehouse: -20},
		},
		{
			name: "approved return a returned con stock suficiente",
			tipo: entity.TypeReturn, from: entity.StatusApproved, to: entity.StatusReturned,
			onShelf: 25,
			want:    transitionEffect{onShelf: -20, pendingReturn: -20, warehouse: 20},
		},
		{
			name: "approved a rejected prohibido",
			tipo: entity.TypeRestock, from: entity.StatusApproved, to: entity.StatusRejected,
			wantErr: domain.ErrTransitionRejected,
		},
		{
			name: "pending a delivered salta la aprobación",
			tipo: entity.TypeRestock, from: entity.StatusPending, to: entity.StatusDelivered,
			wantErr: domain.ErrTransitionRejected,
		},
		{
			name: "delivered es terminal",
			tipo: entity.TypeRestock, from: entity.StatusDelivered, to: entity.StatusApproved,
			wantErr: domain.ErrTransitionRejected,
		},
		{
			name: "rejected es terminal",
			tipo: entity.TypeReturn, from: entity.StatusRejected, to: entity.StatusApproved,
			wantErr: domain.ErrTransitionRejected,
		},
		{
			name: "return no puede marcarse delivered",
			tipo: entity.TypeReturn, from: entity.StatusApproved, to: entity.StatusDelivered,
			wantErr: domain.ErrTransitionRejected,
		},
		{
			name: "restock no puede marcarse returned",
			tipo: entity.TypeRestock, from: entity.StatusApproved, to: entity.StatusReturned,
			onShelf: 100,
			wantErr: domain.ErrTransitionRejected,
		},
		{
			name: "returned sin stock en estantería",
			tipo: entity.TypeReturn, from: entity.StatusApproved, to: entity.StatusReturned,
			onShelf: 19,
			wantErr: domain.ErrInsufficientStock,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			effect, err := planTransition(txnWith(tc.tipo, tc.from, 20), tc.to, tc.onShelf)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, effect)
		})
	}
}

func TestPlanTransition_ErrorDeTransicionIdentificaElPredicado(t *testing.T) {
	_, err := planTransition(txnWith(entity.TypeRestock, entity.StatusApproved, 10), entity.StatusRejected, 0)

	var te *domain.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "txn-1", te.TransactionID)
	assert.Equal(t, "approved", te.From)
	assert.Equal(t, "rejected", te.To)
	assert.NotEmpty(t, te.Reason)
}

func TestPlanTransition_FaltanteExponeContadoresActuales(t *testing.T) {
	_, err := planTransition(txnWith(entity.TypeReturn, entity.StatusApproved, 5), entity.StatusReturned, 3)

	var se *domain.StockShortageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "store-1", se.StoreID)
	assert.Equal(t, "prod-1", se.ProductID)
	assert.Equal(t, 3, se.OnShelf)
	assert.Equal(t, 5, se.Requested)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestApply_RechazaContadoresNegativos(t *testing.T) {
	entry := &entity.LedgerEntry{StoreID: "store-1", ProductID: "prod-1", OnShelf: 2}

	err := transitionEffect{onShelf: -5}.apply(entry)
	require.Error(t, err)
}

func TestApply_SumaDeltas(t *testing.T) {
	entry := &entity.LedgerEntry{OnShelf: 10, PendingDelivery: 20, PendingReturn: 5}

	err := transitionEffect{onShelf: 20, pendingDelivery: -20}.apply(entry)
	require.NoError(t, err)
	assert.Equal(t, 30, entry.OnShelf)
	assert.Equal(t, 0, entry.PendingDelivery)
	assert.Equal(t, 5, entry.PendingReturn)
}
