package analytics

import (
	"sort"
	"strings"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// DebtAnalysis aggregates loans and credit card dues into debt metrics.
// Months to debt freedom is a linear estimate at the current payment rate;
// it deliberately ignores interest, unlike the amortized EMI math in
// CanAffordLoan.
func DebtAnalysis(s *snapshot.Snapshot) models.DebtReport {
	loans := s.AllLoans()
	cards := s.CreditCards()

	var totalDebt, monthlyPayment float64
	for _, l := range loans {
		totalDebt += l.OutstandingAmount
		monthlyPayment += l.EMI
	}
	var cardDebt, cardDue float64
	for _, c := range cards {
		cardDebt += c.OutstandingBalance
		cardDue += c.MinPaymentDue
	}
	totalDebt += cardDebt
	monthlyPayment += cardDue

	types := make([]string, 0, len(loans))
	for t := range loans {
		types = append(types, t)
	}
	sort.Strings(types)

	distribution := make([]models.SeriesPoint, 0, len(types)+1)
	detail := make([]models.LoanDetail, 0, len(types))
	for _, t := range types {
		l := loans[t]
		distribution = append(distribution, models.SeriesPoint{Label: humanizeLoanType(t), Value: l.OutstandingAmount})
		detail = append(detail, models.LoanDetail{
			Type:            humanizeLoanType(t),
			Outstanding:     l.OutstandingAmount,
			InterestRate:    l.InterestRate,
			EMI:             l.EMI,
			EndDate:         l.EndDate,
			RemainingTenure: l.RemainingTenure,
		})
	}
	if len(cards) > 0 {
		distribution = append(distribution, models.SeriesPoint{Label: "Credit Cards", Value: cardDebt})
	}

	income := s.MonthlyIncome()
	var dti float64
	if income > 0 {
		dti = monthlyPayment / income * 100
	}

	var monthsToFreedom float64
	if monthlyPayment > 0 {
		monthsToFreedom = totalDebt / monthlyPayment
	}

	return models.DebtReport{
		Distribution: distribution,
		Metrics: models.DebtMetrics{
			TotalDebt:           totalDebt,
			MonthlyDebtPayment:  monthlyPayment,
			DebtToIncomeRatio:   dti,
			MonthsToDebtFreedom: monthsToFreedom,
		},
		LoansDetail: detail,
	}
}

// humanizeLoanType turns a snapshot key like "home_loan" into "Home Loan"
func humanizeLoanType(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
