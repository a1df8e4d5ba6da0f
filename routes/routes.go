package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rental-backend/controllers"
	"rental-backend/middleware"
)

// SetupRouter wires controller instances onto the /api route table.
func SetupRouter(
	origins []string,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	pc *controllers.PropertyController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.POST("", pc.CreateProperty)
			properties.GET("/:id", pc.GetProperty)
			properties.GET("/:id/stats", pc.GetStats)
			properties.POST("/:id/stats/recount", pc.RecountStats)
			properties.POST("/:id/rooms", rc.CreateRoom)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/:id", rc.GetRoom)
			rooms.GET("/:id/quote", bc.QuoteRoom)
			rooms.GET("/:id/bookings", bc.GetRoomBookings)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.POST("/:id/occupants", rc.AssignOccupant)
			rooms.DELETE("/:id/occupants", rc.VacateOccupant)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
		}
	}

	return r
}
