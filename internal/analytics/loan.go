package analytics

import (
	"math"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// CanAffordLoan checks whether a new loan fits within the user's income
// and existing obligations. The requested EMI uses the standard fixed-rate
// amortization formula; a zero interest rate degenerates to straight-line
// repayment. With no reported income the debt-to-income ratio is pinned to
// 1 so the answer is a conservative "cannot afford".
func CanAffordLoan(s *snapshot.Snapshot, amount, annualRate float64, tenureYears int) models.LoanAffordability {
	emi := MonthlyInstallment(amount, annualRate, tenureYears)

	var existingEMI float64
	for _, l := range s.AllLoans() {
		existingEMI += l.EMI
	}
	totalEMI := existingEMI + emi

	income := s.MonthlyIncome()
	dti := 1.0
	if income > 0 {
		dti = totalEMI / income
	}

	recommendedMax := income * 0.4
	maxAffordable := income*0.5 - existingEMI

	return models.LoanAffordability{
		CanAfford:         dti < 0.5 && maxAffordable > 0,
		RequestedEMI:      round2(emi),
		MaxAffordableEMI:  round2(maxAffordable),
		RecommendedEMI:    round2(math.Min(recommendedMax-existingEMI, maxAffordable)),
		DebtToIncomeRatio: round2(dti * 100),
		ExistingEMI:       round2(existingEMI),
		MonthlyIncome:     round2(income),
	}
}

// MonthlyInstallment computes the equated monthly installment for a
// fixed-rate loan. annualRate is a percentage, e.g. 8.5.
func MonthlyInstallment(amount, annualRate float64, tenureYears int) float64 {
	n := float64(tenureYears * 12)
	if n <= 0 {
		return 0
	}
	r := annualRate / 1200
	if r == 0 {
		return amount / n
	}
	factor := math.Pow(1+r, n)
	return amount * r * factor / (factor - 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
