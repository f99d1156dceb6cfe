package routes

import (
	"rmadmin/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the reservas endpoints and stats.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/reservas")
	{
		booking.GET("", hb.ListBookings)
		booking.POST("", hb.CreateBooking)
		booking.GET("/:id", hb.GetBooking)
		booking.PATCH("/:id", hb.UpdateBooking)
		booking.DELETE("/:id", hb.DeleteBooking)
		booking.PATCH("/:id/estado", hb.TransitionBooking)
	}
	r.GET("/api/stats", hb.GetStats)
}
