package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	reviewRepo "dreamydestiny/database/repository/review"
	"dreamydestiny/models"
	"dreamydestiny/utils"
)

// ReviewHandler serves the review submission endpoint.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// CreateReviewHandler handles POST /reviews. The body is inserted verbatim.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Invalid review body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Repo.Insert(doc)
	if err != nil {
		logger.Error("Failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, models.InsertAck{Acknowledged: true, InsertedID: id})
}
