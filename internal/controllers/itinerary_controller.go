package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jairomatosve/voyagedesigner/internal/ai"
	"github.com/jairomatosve/voyagedesigner/internal/cache"
	"github.com/jairomatosve/voyagedesigner/internal/config"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
	"github.com/jairomatosve/voyagedesigner/internal/models"
	"github.com/jairomatosve/voyagedesigner/internal/planner"
	"github.com/jairomatosve/voyagedesigner/internal/queue"
)

func findTrip(c *gin.Context) (*models.Trip, bool) {
	var trip models.Trip
	err := config.DB.
		Preload("Destinations", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		First(&trip, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip"})
		}
		return nil, false
	}
	return &trip, true
}

func tripDestinationLabel(trip *models.Trip) string {
	if trip.Destination != "" {
		return trip.Destination
	}
	locations := make([]string, 0, len(trip.Destinations))
	for _, s := range trip.Destinations {
		locations = append(locations, s.Location)
	}
	return strings.Join(locations, ", ")
}

func loadDays(tripID uint) ([]models.ItineraryDay, error) {
	var days []models.ItineraryDay
	err := config.DB.
		Where("trip_id = ?", tripID).
		Order("day_index").
		Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Find(&days).Error
	return days, err
}

// GenerateItinerary asks the configured generator for a day-by-day plan and
// replaces the trip's stored itinerary wholesale. An upstream failure leaves
// the previous itinerary untouched.
func GenerateItinerary(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	var input struct {
		Interests []string `json:"interests"`
		Pace      string   `json:"pace"`
	}
	// Body is optional; an empty or absent body means default preferences.
	_ = c.ShouldBindJSON(&input)

	plan, err := Generator.GenerateItinerary(c.Request.Context(), ai.GenerateRequest{
		Destination: tripDestinationLabel(trip),
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Interests:   input.Interests,
		Pace:        input.Pace,
	})
	if err != nil {
		logrus.WithError(err).Errorf("GenerateItinerary: trip %d", trip.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate itinerary"})
		return
	}

	days := make([]models.ItineraryDay, 0, len(plan.Days))
	for _, d := range plan.Days {
		date, _ := time.Parse("2006-01-02", d.Date)
		day := models.ItineraryDay{
			TripID:   trip.ID,
			DayIndex: d.DayIndex,
			Date:     date,
			Theme:    d.Theme,
		}
		for i, a := range d.Activities {
			day.Activities = append(day.Activities, models.Activity{
				Seq:           i + 1,
				Title:         a.Title,
				Description:   a.Description,
				Location:      a.Location,
				StartTime:     a.StartTime,
				EndTime:       a.EndTime,
				DurationMin:   a.DurationMin,
				EstimatedCost: a.EstimatedCost,
				Category:      a.Category,
				Status:        models.ActivityPlanned,
			})
		}
		days = append(days, day)
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction"})
		return
	}

	// Wholesale replacement: activities are never deleted individually.
	if err := tx.Where("itinerary_day_id IN (SELECT id FROM itinerary_days WHERE trip_id = ?)", trip.ID).
		Delete(&models.Activity{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store itinerary"})
		return
	}
	if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.ItineraryDay{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store itinerary"})
		return
	}
	if err := tx.Create(&days).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Errorf("GenerateItinerary: persisting trip %d failed", trip.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store itinerary"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	go queue.Publish(context.Background(), queue.ItineraryGeneratedQueue, queue.ItineraryGeneratedEvent{
		TripID:      trip.ID,
		UserID:      middleware.UserID(c),
		DayCount:    len(days),
		Generator:   GeneratorName,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})

	c.JSON(http.StatusOK, gin.H{"itinerary": gin.H{"days": days}})
}

// GetItinerary returns the stored day-by-day plan plus the skipped-activity
// flag that drives the re-optimize affordance.
func GetItinerary(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	days, err := loadDays(trip.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itinerary":            gin.H{"days": days},
		"needs_reoptimization": planner.NeedsReoptimization(days),
	})
}

// UpdateActivityStatus advances one activity. Without an explicit status in
// the body it follows the manual ring planned -> completed -> skipped ->
// planned; an external caller may set any valid state, including "ongoing".
func UpdateActivityStatus(c *gin.Context) {
	var activity models.Activity
	if err := config.DB.First(&activity, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		}
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	_ = c.ShouldBindJSON(&input)

	if input.Status == "" {
		activity.Status = planner.NextStatus(activity.Status)
	} else if planner.ValidStatus(input.Status) {
		activity.Status = input.Status
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity status"})
		return
	}

	if err := config.DB.Save(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	var day models.ItineraryDay
	if err := config.DB.First(&day, activity.ItineraryDayID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch itinerary"})
		return
	}
	days, err := loadDays(day.TripID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity":             activity,
		"needs_reoptimization": planner.NeedsReoptimization(days),
	})
}

// Reoptimize requests a fixed-size batch of alternative activities and
// caches it as the caller's one live suggestion session for this trip.
func Reoptimize(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	var input struct {
		FailedActivity string `json:"failed_activity"`
		TimeAvailable  string `json:"time_available"`
		Constraints    string `json:"constraints"`
	}
	_ = c.ShouldBindJSON(&input)

	suggestions, err := Generator.SuggestAlternatives(c.Request.Context(), ai.ReoptimizeRequest{
		Destination:    tripDestinationLabel(trip),
		FailedActivity: input.FailedActivity,
		TimeAvailable:  input.TimeAvailable,
		Constraints:    input.Constraints,
	})
	if err != nil {
		logrus.WithError(err).Errorf("Reoptimize: trip %d", trip.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reoptimize itinerary"})
		return
	}

	batch, err := Suggestions.Put(c.Request.Context(), trip.ID, middleware.UserID(c), suggestions)
	if err != nil {
		logrus.WithError(err).Warn("Reoptimize: caching suggestion session failed")
		batch = suggestions // still answer, the session is just not resumable
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": batch})
}

// DeclineSuggestion drops one suggestion from the live session.
func DeclineSuggestion(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	remaining, err := Suggestions.Decline(c.Request.Context(), trip.ID, middleware.UserID(c), c.Param("sid"))
	if err != nil {
		suggestionSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": remaining})
}

// AcceptSuggestion returns the chosen alternative and closes the session;
// substituting it into the itinerary is the caller's move.
func AcceptSuggestion(c *gin.Context) {
	trip, ok := findTrip(c)
	if !ok {
		return
	}

	accepted, err := Suggestions.Accept(c.Request.Context(), trip.ID, middleware.UserID(c), c.Param("sid"))
	if err != nil {
		suggestionSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": accepted})
}

func suggestionSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cache.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "No active suggestion session"})
	case errors.Is(err, cache.ErrUnknownSuggestion):
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
	default:
		logrus.WithError(err).Error("suggestion session lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read suggestion session"})
	}
}
