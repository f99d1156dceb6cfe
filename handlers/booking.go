package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rmadmin/models"
	"rmadmin/utils"
)

// ListBookings handles GET /api/reservas?page=n. Without a page the current
// page is returned.
func (hb *HandlerBundle) ListBookings(c *gin.Context) {
	raw := c.Query("page")
	if raw == "" {
		c.JSON(http.StatusOK, hb.Svc.CurrentView())
		return
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid page", err.Error())
		return
	}
	c.JSON(http.StatusOK, hb.Svc.GoToPage(page))
}

// GetBooking handles GET /api/reservas/:id.
func (hb *HandlerBundle) GetBooking(c *gin.Context) {
	id := c.Param("id")
	booking, ok := hb.Svc.FindBooking(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "record not found", id)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking handles POST /api/reservas.
func (hb *HandlerBundle) CreateBooking(c *gin.Context) {
	var in models.NewBooking
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	id, err := hb.Svc.CreateBooking(c.Request.Context(), in)
	if err != nil {
		hb.respondError(c, "CreateBooking", err)
		return
	}
	hb.getLogger(c).Info("booking created", zap.String("id", id))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateBooking handles PATCH /api/reservas/:id with a partial document.
// Status changes are refused here; they go through /estado.
func (hb *HandlerBundle) UpdateBooking(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	id := c.Param("id")
	if err := hb.Svc.UpdateBooking(c.Request.Context(), id, fields); err != nil {
		hb.respondError(c, "UpdateBooking", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// DeleteBooking handles DELETE /api/reservas/:id.
func (hb *HandlerBundle) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Svc.DeleteBooking(c.Request.Context(), id); err != nil {
		hb.respondError(c, "DeleteBooking", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": id})
}

// TransitionBooking handles PATCH /api/reservas/:id/estado. The response is
// 202: the new status shows up with the next push.
func (hb *HandlerBundle) TransitionBooking(c *gin.Context) {
	var body struct {
		Status string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	next, err := models.ParseStatus(body.Status)
	if err != nil {
		hb.respondError(c, "TransitionBooking", err)
		return
	}

	t, err := hb.Svc.RequestTransition(c.Request.Context(), c.Param("id"), next)
	if err != nil {
		hb.respondError(c, "TransitionBooking", err)
		return
	}
	c.JSON(http.StatusAccepted, t)
}

// GetStats handles GET /api/stats. Stats come from the cache and may lag the
// bookings by up to the stats ttl; ?fresh=true recomputes them.
func (hb *HandlerBundle) GetStats(c *gin.Context) {
	if fresh, _ := strconv.ParseBool(c.Query("fresh")); fresh {
		c.JSON(http.StatusOK, gin.H{"stats": hb.Svc.FreshStats(), "cached": false})
		return
	}
	stats, cached := hb.Svc.CurrentStats()
	c.JSON(http.StatusOK, gin.H{"stats": stats, "cached": cached})
}
