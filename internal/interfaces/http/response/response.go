package response

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/pkg/logger"
)

// TotalCountHeader carries the number of matches before paging
const TotalCountHeader = "X-Total-Count"

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// List sends a JSON array and reports the unpaged match count in a header
func List(c *gin.Context, status int, items interface{}, total int64) {
	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	c.JSON(status, items)
}

// Error sends an error response. Internal errors are logged and their
// details never reach the client.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	if appErr.Status >= 500 {
		ctx := context.Background()
		if c.Request != nil {
			ctx = c.Request.Context()
		}
		logger.Error(ctx, "Request failed", zap.Error(err))
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// Abort sends an error response and stops the handler chain
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
