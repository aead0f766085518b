package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	roomRepo "dreamydestiny/database/repository/room"
	"dreamydestiny/models"
	"dreamydestiny/utils"
)

const (
	featuredCacheKey = "cache:featured-rooms"
	featuredCacheTTL = 5 * time.Minute
)

// RoomHandler serves the room read endpoints. Cache may be nil, in which
// case every read goes straight to the store.
type RoomHandler struct {
	Repo  roomRepo.RoomRepository
	Cache *redis.Client
}

// NewRoomHandler creates a room handler.
func NewRoomHandler(repo roomRepo.RoomRepository, cache *redis.Client) *RoomHandler {
	return &RoomHandler{Repo: repo, Cache: cache}
}

// FeaturedRoomsHandler handles GET /featured-rooms. The full listing is
// cached with a short TTL; cache failures fall back to the store.
func (h *RoomHandler) FeaturedRoomsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if h.Cache != nil {
		payload, err := h.Cache.Get(c.Request.Context(), featuredCacheKey).Bytes()
		if err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
		if err != redis.Nil {
			logger.Warn("Featured rooms cache read failed", zap.Error(err))
		}
	}

	rooms, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to list featured rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rooms == nil {
		rooms = []bson.M{}
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(rooms); err == nil {
			if err := h.Cache.Set(c.Request.Context(), featuredCacheKey, payload, featuredCacheTTL).Err(); err != nil {
				logger.Warn("Featured rooms cache write failed", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, rooms)
}

// parsePriceBound converts a query value to an optional bound. An absent
// value leaves that side of the range open.
func parsePriceBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListRoomsHandler handles GET /rooms with optional inclusive
// minPrice/maxPrice bounds on price_per_night.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	min, err := parsePriceBound(c.Query("minPrice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be numeric"})
		return
	}
	max, err := parsePriceBound(c.Query("maxPrice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be numeric"})
		return
	}

	rooms, err := h.Repo.GetByPriceRange(models.PriceRange{Min: min, Max: max})
	if err != nil {
		logger.Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rooms == nil {
		rooms = []bson.M{}
	}
	c.JSON(http.StatusOK, rooms)
}

// RoomDetailsHandler handles GET /room-details/:id. A well-formed id that
// matches nothing yields a null body, not an error.
func (h *RoomHandler) RoomDetailsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	room, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch room", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}
