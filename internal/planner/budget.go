package planner

import "github.com/jairomatosve/voyagedesigner/internal/models"

// BudgetSummary is recomputed from the full expense list on every read;
// no incremental aggregate is kept anywhere.
type BudgetSummary struct {
	TotalBudget     float64            `json:"total_budget"`
	TotalSpent      float64            `json:"total_spent"`
	Remaining       float64            `json:"remaining"`
	SpentPercentage float64            `json:"spent_percentage"`
	ByCategory      map[string]float64 `json:"by_category"`
}

// Summarize reduces a trip's expenses against its total budget. Remaining
// may go negative; the percentage is zero whenever the budget is not
// positive.
func Summarize(totalBudget float64, expenses []models.Expense) BudgetSummary {
	summary := BudgetSummary{
		TotalBudget: totalBudget,
		ByCategory:  make(map[string]float64),
	}
	for _, e := range expenses {
		summary.TotalSpent += e.Amount
		summary.ByCategory[e.Category] += e.Amount
	}
	summary.Remaining = totalBudget - summary.TotalSpent
	if totalBudget > 0 {
		summary.SpentPercentage = summary.TotalSpent / totalBudget * 100
	}
	return summary
}
