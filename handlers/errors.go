package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rmadmin/models"
	"rmadmin/services/dashboard"
	"rmadmin/utils"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidRecordID),
		errors.Is(err, models.ErrInvalidBooking),
		errors.Is(err, models.ErrInvalidProduct):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, models.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, dashboard.ErrTransitionNotAllowed):
		return http.StatusConflict, "status transition not allowed"
	case errors.Is(err, dashboard.ErrSessionClosed):
		return http.StatusServiceUnavailable, "dashboard unavailable"
	case errors.Is(err, dashboard.ErrMutation):
		return http.StatusBadGateway, "remote store write failed"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (hb *HandlerBundle) respondError(c *gin.Context, op string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		hb.getLogger(c).Error(op, zap.Error(err))
	}
	utils.JSONError(c, status, message, err.Error())
}
