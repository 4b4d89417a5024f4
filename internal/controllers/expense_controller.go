package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jairomatosve/voyagedesigner/internal/config"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
	"github.com/jairomatosve/voyagedesigner/internal/models"
	"github.com/jairomatosve/voyagedesigner/internal/planner"
	"github.com/jairomatosve/voyagedesigner/internal/queue"
)

func validExpenseCategory(category string) bool {
	switch category {
	case "accommodation", "food", "transport", "activities", "shopping", "other":
		return true
	}
	return false
}

// ListExpenses returns the trip's ledger plus a summary recomputed from it.
func ListExpenses(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := config.DB.Where("trip_id = ?", trip.ID).Order("date").Find(&expenses).Error; err != nil {
		logrus.WithError(err).Errorf("ListExpenses: trip %d", trip.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"summary":  planner.Summarize(trip.TotalBudget, expenses),
	})
}

// CreateExpense appends one ledger entry. Entries are never edited or
// deleted afterwards.
func CreateExpense(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	var input struct {
		Category    string    `json:"category" binding:"required"`
		Amount      float64   `json:"amount" binding:"required,gt=0"`
		Description string    `json:"description"`
		Currency    string    `json:"currency"`
		Date        time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense data: " + err.Error()})
		return
	}
	if !validExpenseCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense category"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = trip.Currency
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := models.Expense{
		TripID:      trip.ID,
		UserID:      middleware.UserID(c),
		Category:    input.Category,
		Amount:      input.Amount,
		Currency:    currency,
		Description: input.Description,
		Date:        date,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		logrus.WithError(err).Errorf("CreateExpense: trip %d", trip.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log expense"})
		return
	}

	var expenses []models.Expense
	if err := config.DB.Where("trip_id = ?", trip.ID).Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	summary := planner.Summarize(trip.TotalBudget, expenses)

	go queue.Publish(context.Background(), queue.ExpenseLoggedQueue, queue.ExpenseLoggedEvent{
		ExpenseID: expense.ID,
		TripID:    trip.ID,
		UserID:    expense.UserID,
		Category:  expense.Category,
		Amount:    expense.Amount,
		Currency:  expense.Currency,
		Remaining: summary.Remaining,
		LoggedAt:  time.Now().UTC().Format(time.RFC3339),
	})

	c.JSON(http.StatusCreated, gin.H{"expense": expense, "summary": summary})
}
