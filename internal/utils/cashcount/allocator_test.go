package cashcount_test

import (
	"testing"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
	"github.com/cambiosys/currency_exchange_app/internal/utils/cashcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stock(entries ...domain.DenominationStock) []domain.DenominationStock {
	return entries
}

func d(id string, face, qty int64) domain.DenominationStock {
	return domain.DenominationStock{DenominationID: id, FaceValue: face, Quantity: qty}
}

func TestCanCover_BoundedSubsetSum(t *testing.T) {
	available := stock(d("d100", 100, 1), d("d50", 50, 1), d("d20", 20, 1))

	assert.True(t, cashcount.CanCover(170, available), "100+50+20")
	assert.False(t, cashcount.CanCover(171, available))
	assert.True(t, cashcount.CanCover(0, available))
	assert.False(t, cashcount.CanCover(-1, available))
}

func TestCanCover_QuantityCapsMatter(t *testing.T) {
	// Unbounded change-making would cover 300 with three 100s; the cap says no.
	available := stock(d("d100", 100, 2), d("d20", 20, 2))
	assert.False(t, cashcount.CanCover(300, available))
	assert.True(t, cashcount.CanCover(240, available))
	assert.True(t, cashcount.CanCover(220, available))
	assert.False(t, cashcount.CanCover(230, available))
}

func TestCanCover_NonGreedyDecomposition(t *testing.T) {
	// Greedy would take the 50 and strand 30; DP finds 3*20.
	available := stock(d("d50", 50, 1), d("d20", 20, 3))
	assert.True(t, cashcount.CanCover(60, available))
	assert.True(t, cashcount.CanCover(110, available))
	assert.False(t, cashcount.CanCover(80, available)) // 50+20=70, 50+40=90, 3*20=60: no 80
}

func TestCanCover_TargetBeyondTotalStock(t *testing.T) {
	// The DP table is sized by the target; an amount beyond the total stock
	// value must fail before the table is built.
	available := stock(d("d100", 100, 1))

	assert.False(t, cashcount.CanCover(400_000_000, available))
	assert.False(t, cashcount.CanCover(101, available))
	assert.True(t, cashcount.CanCover(100, available))
}

func TestCanCover_LargeCapsStayFast(t *testing.T) {
	available := stock(d("d100", 100, 5000), d("d50", 50, 5000), d("d1", 1, 5000))
	assert.True(t, cashcount.CanCover(754321, available))
	assert.False(t, cashcount.CanCover(760001, available))
}

func TestAllocate_ExactBreakdown(t *testing.T) {
	available := stock(d("d100", 100, 3), d("d50", 50, 2), d("d20", 20, 5))

	alloc, err := cashcount.Allocate(370, available)
	require.NoError(t, err)
	assert.Equal(t, int64(3), alloc["d100"])
	assert.Equal(t, int64(1), alloc["d50"])
	assert.Equal(t, int64(1), alloc["d20"])
}

func TestAllocate_NeverOverDebitsAndSumsExactly(t *testing.T) {
	available := stock(d("d100", 100, 2), d("d50", 50, 3), d("d20", 20, 10), d("d10", 10, 10))
	faces := map[string]int64{"d100": 100, "d50": 50, "d20": 20, "d10": 10}
	caps := map[string]int64{"d100": 2, "d50": 3, "d20": 10, "d10": 10}

	for _, target := range []int64{10, 90, 200, 350, 480, 650} {
		alloc, err := cashcount.Allocate(target, available)
		require.NoError(t, err, "target %d", target)

		var sum int64
		for id, qty := range alloc {
			assert.LessOrEqual(t, qty, caps[id], "over-debit of %s for target %d", id, target)
			assert.Positive(t, qty)
			sum += qty * faces[id]
		}
		assert.Equal(t, target, sum, "breakdown must sum exactly to target %d", target)
	}
}

func TestAllocate_FailsExplicitlyInsteadOfUnderDelivering(t *testing.T) {
	available := stock(d("d100", 100, 1), d("d20", 20, 1))

	alloc, err := cashcount.Allocate(130, available)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Nil(t, alloc)
}

func TestAllocate_GreedyDivergesFromFeasibility(t *testing.T) {
	// 60 is coverable (3*20) but greedy takes the 50 first and fails. The
	// allocator must surface the failure rather than silently under-deliver.
	available := stock(d("d50", 50, 1), d("d20", 20, 3))

	require.True(t, cashcount.CanCover(60, available))
	_, err := cashcount.Allocate(60, available)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
}

func TestAllocate_ZeroAndNegative(t *testing.T) {
	available := stock(d("d100", 100, 1))

	alloc, err := cashcount.Allocate(0, available)
	require.NoError(t, err)
	assert.Empty(t, alloc)

	_, err = cashcount.Allocate(-5, available)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
