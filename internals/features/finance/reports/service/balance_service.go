package service

import (
	"math"

	concessionModel "campushub_backend/internals/features/finance/concessions/model"
	feeModel "campushub_backend/internals/features/finance/fees/model"
)

type HeadBalance struct {
	Name             string  `json:"name"`
	HeadAmount       float64 `json:"head_amount"`
	PaidAmount       float64 `json:"paid_amount"`
	ConcessionAmount float64 `json:"concession_amount"`
	Balance          float64 `json:"balance"`
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ConcessionTotal sums the discounts of active concessions against a fee total.
func ConcessionTotal(concessions []concessionModel.ConcessionModel, feeTotal float64) float64 {
	total := 0.0
	for _, con := range concessions {
		if con.ConcessionStatus != concessionModel.ConcessionStatusActive {
			continue
		}
		total += con.Resolve(feeTotal)
	}
	return sanitize(total)
}

// ComputeHeadBalances derives the outstanding amount per fee head. Payments
// and concessions are allocated proportionally to each head's share of the
// total; balances are clamped at zero so over-payment never goes negative.
func ComputeHeadBalances(fs feeModel.FeeStructureModel, totalPaid, concessionTotal float64) []HeadBalance {
	total := sanitize(fs.FeeStructureTotal)
	totalPaid = sanitize(totalPaid)
	concessionTotal = sanitize(concessionTotal)

	components := fs.Components()
	out := make([]HeadBalance, 0, len(components))
	for _, comp := range components {
		head := sanitize(comp.Amount)

		share := 0.0
		if total > 0 {
			share = head / total
		}
		paidForHead := sanitize(totalPaid * share)
		concessionForHead := sanitize(concessionTotal * share)

		balance := head - paidForHead - concessionForHead
		if balance < 0 || math.IsNaN(balance) {
			balance = 0
		}

		out = append(out, HeadBalance{
			Name:             comp.Name,
			HeadAmount:       head,
			PaidAmount:       round2(paidForHead),
			ConcessionAmount: round2(concessionForHead),
			Balance:          round2(balance),
		})
	}
	return out
}

// TotalOutstanding sums the per-head balances.
func TotalOutstanding(heads []HeadBalance) float64 {
	total := 0.0
	for _, h := range heads {
		total += h.Balance
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
