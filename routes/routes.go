package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
)

// SetupRouter wires the controllers under /api.
func SetupRouter(
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	origins []string,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), gin.Recovery())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
			rooms.POST("", rc.CreateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			// static segment, matched before /:id
			reservations.GET("/search", resc.SearchAvailability)
			reservations.GET("/:id", resc.GetReservation)
			reservations.POST("", resc.CreateReservation)
			reservations.PUT("/:id", resc.UpdateReservation)
			reservations.DELETE("/:id", resc.DeleteReservation)
		}
	}

	return r
}
