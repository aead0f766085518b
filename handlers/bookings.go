package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	bookingRepo "dreamydestiny/database/repository/booking"
	"dreamydestiny/models"
	"dreamydestiny/utils"
)

// BookingHandler serves the booking endpoints. Bookings are stored exactly
// as submitted; ownership and date overlap are not checked here.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// ListBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	bookings, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []bson.M{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler handles POST /bookings. The body is inserted
// verbatim and the store's acknowledgment is returned.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Invalid booking body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Repo.Insert(doc)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.InsertAck{Acknowledged: true, InsertedID: id})
}

// MyBookingsHandler handles GET /my-bookings/:email. The caller is not
// required to prove ownership of the email.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	email := c.Param("email")
	bookings, err := h.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Failed to list bookings by email", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []bson.M{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingDatesHandler handles PATCH /bookings/:id. Only the
// check-in/check-out pair is replaced.
func (h *BookingHandler) UpdateBookingDatesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var dates models.BookingDates
	if err := c.ShouldBindJSON(&dates); err != nil {
		logger.Warn("Invalid booking dates body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched, modified, err := h.Repo.UpdateDates(id, dates)
	if err != nil {
		logger.Error("Failed to update booking", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.UpdateAck{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified})
}

// CancelBookingHandler handles DELETE /bookings/:id. Deleting an already
// removed booking reports a zero count rather than an error.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	deleted, err := h.Repo.Delete(id)
	if err != nil {
		logger.Error("Failed to delete booking", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.DeleteAck{Acknowledged: true, DeletedCount: deleted})
}
