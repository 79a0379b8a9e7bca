// Package ledger maintains the per-security running inventory balance for one
// import batch and flags transactions that would oversell a position.
package ledger

import (
	"sort"

	"github.com/KenzyTran/stock-import-backend/internal/model"
)

// Suggestion attached to every negative-balance warning.
const negativeBalanceSuggestion = "Check the volume or add an earlier Buy transaction."

// ComputeBalances orders the batch chronologically and accumulates the signed
// volume per stock code: Buy adds, Sell subtracts. Each output record carries
// its post-update balance; records that leave a balance negative are flagged
// and produce a Warning. The full warnings list is attached to every record
// in the batch (a batch-level annotation, not per-row scoping).
//
// The sort is a stable lexical comparison on the canonical timestamp form.
// Rows whose date failed to canonicalize sort by their raw text, so their
// placement is best-effort only.
//
// The balances map is created fresh per call; no state survives between
// batches. Once a balance goes negative it keeps accumulating from that
// negative baseline, so consecutive oversells each produce their own warning.
func ComputeBalances(rated []model.RatedTransaction) []model.BalancedTransaction {
	balanced := make([]model.BalancedTransaction, len(rated))
	for i, t := range rated {
		balanced[i] = model.BalancedTransaction{RatedTransaction: t}
	}

	sort.SliceStable(balanced, func(i, j int) bool {
		return balanced[i].TransactionTime < balanced[j].TransactionTime
	})

	balances := make(map[string]int)
	for i := range balanced {
		t := &balanced[i]
		if t.TransactionType == model.TransactionTypeBuy {
			balances[t.StockCode] += t.Volume
		} else {
			balances[t.StockCode] -= t.Volume
		}
		t.RunningBalance = balances[t.StockCode]
		t.NegativeBalance = t.RunningBalance < 0
	}

	warnings := make([]model.Warning, 0)
	for i := range balanced {
		t := &balanced[i]
		if !t.NegativeBalance {
			continue
		}
		warnings = append(warnings, model.Warning{
			RecordIndex:     i,
			StockCode:       t.StockCode,
			TransactionTime: t.TransactionTime,
			TransactionType: t.TransactionType,
			Volume:          t.Volume,
			RunningBalance:  t.RunningBalance,
			Suggestion:      negativeBalanceSuggestion,
		})
	}

	for i := range balanced {
		balanced[i].Warnings = warnings
	}

	return balanced
}
