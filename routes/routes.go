package routes

import (
	"net/http"
	"time"

	"rmadmin/handlers"
	"rmadmin/middleware"
	"rmadmin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options configures the global middleware.
type Options struct {
	AllowedOrigins    []string
	MaxRequestsPerMin int
	Logger            *zap.Logger
}

// RegisterProductRoutes registers the productos endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	products := r.Group("/api/productos")
	{
		products.GET("", hb.ListProducts)
		products.POST("", hb.CreateProduct)
		products.GET("/:id", hb.GetProduct)
		products.PATCH("/:id", hb.UpdateProduct)
		products.DELETE("/:id", hb.DeleteProduct)
		products.POST("/:id/visibilidad", hb.ToggleProductVisibility)
	}
}

// RegisterStreamRoute registers the server-sent events endpoint.
func RegisterStreamRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/stream", hb.Stream)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsCfg := cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	// credentials cannot be combined with a wildcard origin
	corsCfg.AllowCredentials = !(len(origins) == 1 && origins[0] == "*")

	r.Use(
		middleware.RequestLogger(opts.Logger),
		utils.ErrorHandler(opts.Logger),
		cors.New(corsCfg),
		middleware.RateLimitMiddleware(opts.MaxRequestsPerMin),
	)

	RegisterHealthRoute(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterStreamRoute(r, hb)

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "route not found", c.Request.URL.Path)
	})
}
