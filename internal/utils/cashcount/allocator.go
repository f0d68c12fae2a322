// Package cashcount decides whether and how a monetary amount can be paid out
// of a bounded multiset of denominations. Amounts and face values are integers
// in the currency's smallest unit; conversion from decimals happens at the
// service boundary.
package cashcount

import (
	"fmt"
	"sort"

	"github.com/cambiosys/currency_exchange_app/internal/apperrors"
	"github.com/cambiosys/currency_exchange_app/internal/core/domain"
)

// sortedDesc returns a copy of available sorted by face value, largest first.
// Zero-quantity and non-positive face values are dropped.
func sortedDesc(available []domain.DenominationStock) []domain.DenominationStock {
	out := make([]domain.DenominationStock, 0, len(available))
	for _, d := range available {
		if d.FaceValue > 0 && d.Quantity > 0 {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FaceValue > out[j].FaceValue })
	return out
}

// CanCover reports whether target can be expressed as a sum of face values
// without exceeding any quantity. This is a bounded subset-sum, solved by dynamic
// programming over reachable partial sums with a per-sum usage counter so each
// denomination's cap is honoured without enumerating multiples. Runs in
// O(target * len(available)) and exits early once the target is reachable.
func CanCover(target int64, available []domain.DenominationStock) bool {
	if target < 0 {
		return false
	}
	if target == 0 {
		return true
	}

	denoms := sortedDesc(available)

	// The DP table is sized by the target, so reject amounts beyond the total
	// stock value before building it.
	var total int64
	for _, d := range denoms {
		total += d.FaceValue * d.Quantity
		if total >= target {
			break
		}
	}
	if total < target {
		return false
	}

	reachable := make([]bool, target+1)
	reachable[0] = true
	// used[s] = how many units of the current denomination the best-known way
	// to reach s consumes; bounded by the stock cap.
	used := make([]int64, target+1)

	for _, denom := range denoms {
		if denom.FaceValue > target {
			continue
		}
		for i := range used {
			used[i] = 0
		}
		for s := denom.FaceValue; s <= target; s++ {
			if reachable[s] {
				continue
			}
			prev := s - denom.FaceValue
			if reachable[prev] && used[prev] < denom.Quantity {
				reachable[s] = true
				used[s] = used[prev] + 1
			}
		}
		if reachable[target] {
			return true
		}
	}
	return reachable[target]
}

// Allocate produces a concrete denomination breakdown for target, greedy from
// the largest face value down. If the greedy pass cannot cover the full
// amount it fails with ErrInsufficientStock rather than returning a partial
// breakdown. Greedy is not equivalent to CanCover for arbitrary denomination
// sets; callers re-check feasibility before retrying a failed payout.
func Allocate(target int64, available []domain.DenominationStock) (map[string]int64, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: negative target amount %d", apperrors.ErrValidation, target)
	}

	allocation := make(map[string]int64)
	remaining := target
	for _, denom := range sortedDesc(available) {
		if remaining == 0 {
			break
		}
		take := remaining / denom.FaceValue
		if take > denom.Quantity {
			take = denom.Quantity
		}
		if take > 0 {
			allocation[denom.DenominationID] = take
			remaining -= take * denom.FaceValue
		}
	}

	if remaining > 0 {
		return nil, fmt.Errorf("%w: %d of %d uncovered after allocation", apperrors.ErrInsufficientStock, remaining, target)
	}
	return allocation, nil
}
