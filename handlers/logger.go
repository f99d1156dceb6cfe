package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rmadmin/utils"
)

// getLogger retrieves the request logger set by the middleware, falling back
// to the bundle's logger.
func (hb *HandlerBundle) getLogger(c *gin.Context) *zap.Logger {
	return utils.RequestLogger(c.Get, hb.Logger)
}
