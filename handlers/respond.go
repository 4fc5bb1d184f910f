package handlers

import (
	"errors"
	"net/http"

	"booktrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondErr maps a service error onto the wire. Classified errors keep their
// message; anything else is hidden behind a generic 500.
func respondErr(c *gin.Context, err error) {
	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": ae.Message})
		return
	}
	utils.GetLogger().Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
