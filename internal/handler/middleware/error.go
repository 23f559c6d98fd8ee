package middleware

import (
	"log/slog"
	"net/http"

	"payment-intention-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorCode = "INTERNAL"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalErrorResponse())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse())
			}
		}()
		c.Next()
	}
}

func internalErrorResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Code = internalErrorCode
	return resp
}
