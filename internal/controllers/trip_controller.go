package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jairomatosve/voyagedesigner/internal/config"
	"github.com/jairomatosve/voyagedesigner/internal/middleware"
	"github.com/jairomatosve/voyagedesigner/internal/models"
	"github.com/jairomatosve/voyagedesigner/internal/planner"
	"github.com/jairomatosve/voyagedesigner/internal/queue"
)

// TripResponse mirrors models.Trip with the stored WKB route geometry
// rendered as GeoJSON.
type TripResponse struct {
	models.Trip
	RouteGeometry string `json:"route_geometry,omitempty"`
}

func toTripResponse(trip models.Trip) TripResponse {
	geojson, err := planner.RouteGeoJSON(trip.RouteGeometry)
	if err != nil {
		logrus.WithError(err).Warnf("trip %d: stored route geometry unreadable", trip.ID)
	}
	return TripResponse{Trip: trip, RouteGeometry: geojson}
}

// ListTrips returns every trip the caller is a member of.
func ListTrips(c *gin.Context) {
	userID := middleware.UserID(c)

	var trips []models.Trip
	err := config.DB.
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id AND trip_members.deleted_at IS NULL").
		Where("trip_members.user_id = ?", userID).
		Preload("Destinations", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Find(&trips).Error
	if err != nil {
		logrus.WithError(err).Error("ListTrips: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trips"})
		return
	}

	responses := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		responses = append(responses, toTripResponse(t))
	}
	c.JSON(http.StatusOK, responses)
}

// GetTrip returns one trip with its stops and members.
func GetTrip(c *gin.Context) {
	var trip models.Trip
	err := config.DB.
		Preload("Destinations", func(db *gorm.DB) *gorm.DB { return db.Order("order_index") }).
		Preload("Members").
		First(&trip, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip"})
		}
		return
	}
	c.JSON(http.StatusOK, toTripResponse(trip))
}

type stopInput struct {
	Location      string    `json:"location" binding:"required"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	TransportType string    `json:"transport_type"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
}

// CreateTrip validates the stop sequence and atomically inserts the trip,
// the owner's admin membership and the destination rows. This transaction
// is the one all-or-nothing guarantee in the write path.
func CreateTrip(c *gin.Context) {
	userID := middleware.UserID(c)

	var input struct {
		Title        string      `json:"title" binding:"required"`
		Destination  string      `json:"destination"`
		Visibility   string      `json:"visibility"`
		Latitude     float64     `json:"latitude"`
		Longitude    float64     `json:"longitude"`
		StartDate    time.Time   `json:"start_date" binding:"required"`
		EndDate      time.Time   `json:"end_date" binding:"required"`
		TotalBudget  float64     `json:"total_budget"`
		Currency     string      `json:"currency"`
		Destinations []stopInput `json:"destinations" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip data: " + err.Error()})
		return
	}

	if input.EndDate.Before(input.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trip end date precedes start date"})
		return
	}
	switch input.Visibility {
	case "":
		input.Visibility = "private"
	case "public", "contacts", "private":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}

	stops := make([]models.TripDestination, 0, len(input.Destinations))
	for _, s := range input.Destinations {
		stops = append(stops, models.TripDestination{
			Location:      s.Location,
			StartDate:     s.StartDate,
			EndDate:       s.EndDate,
			TransportType: s.TransportType,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
		})
	}
	planner.NormalizeOrder(stops)
	if err := planner.ValidateStops(stops); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip data: " + err.Error()})
		return
	}

	routeWKB, err := planner.RouteLine(stops)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stop coordinates: " + err.Error()})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	trip := models.Trip{
		Title:         input.Title,
		Destination:   input.Destination,
		OwnerID:       userID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalBudget:   input.TotalBudget,
		Currency:      currency,
		Status:        "planning",
		Visibility:    input.Visibility,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		RouteGeometry: routeWKB,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction"})
		return
	}

	if err := tx.Create(&trip).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateTrip: trip insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	member := models.TripMember{TripID: trip.ID, UserID: userID, Role: "admin"}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateTrip: owner membership insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	for i := range stops {
		stops[i].TripID = trip.ID
	}
	if err := tx.Create(&stops).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateTrip: destination insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	go queue.Publish(context.Background(), queue.TripCreatedQueue, queue.TripCreatedEvent{
		TripID:      trip.ID,
		OwnerID:     userID,
		Title:       trip.Title,
		Destination: trip.Destination,
		StartDate:   trip.StartDate.Format("2006-01-02"),
		EndDate:     trip.EndDate.Format("2006-01-02"),
		StopCount:   len(stops),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	trip.Destinations = stops
	trip.Members = []models.TripMember{member}
	c.JSON(http.StatusCreated, toTripResponse(trip))
}
