package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dreamydestiny/config"
	"dreamydestiny/handlers"
	"dreamydestiny/utils"
)

// RegisterAuthRoutes registers token issuance and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.Auth.IssueTokenHandler)
	r.POST("/logout", hb.Auth.LogoutHandler)
}

// RegisterRoomRoutes registers the room read endpoints served by every
// deployment variant.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/rooms", hb.Rooms.ListRoomsHandler)
	r.GET("/room-details/:id", hb.Rooms.RoomDetailsHandler)
}

// RegisterBookingRoutes registers the full-variant endpoints: featured
// rooms, bookings and reviews. None of them mount the auth middleware;
// the data surface is public.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/featured-rooms", hb.Rooms.FeaturedRoomsHandler)

	r.GET("/bookings", hb.Bookings.ListBookingsHandler)
	r.POST("/bookings", hb.Bookings.CreateBookingHandler)
	r.GET("/my-bookings/:email", hb.Bookings.MyBookingsHandler)
	r.PATCH("/bookings/:id", hb.Bookings.UpdateBookingDatesHandler)
	r.DELETE("/bookings/:id", hb.Bookings.CancelBookingHandler)

	r.POST("/reviews", hb.Reviews.CreateReviewHandler)
}

// RegisterHealthRoutes registers the liveness string and the health
// snapshot endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "dreamydestiny hotel is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterAuthRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	if config.AppConfig.FeatureBookings {
		RegisterBookingRoutes(r, hb)
	}
}
