package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. A dead subscription still answers 200 with the
// last snapshot being served; the error is reported for operators.
func (hb *HandlerBundle) Health(c *gin.Context) {
	body := gin.H{
		"status":  "ok",
		"message": "Hi, I'm rmadmin",
		"ready":   hb.Svc.Ready(),
		"clients": hb.Hub.Clients(),
	}
	if err := hb.Svc.Err(); err != nil {
		body["status"] = "degraded"
		body["syncError"] = err.Error()
	}
	c.JSON(http.StatusOK, body)
}
