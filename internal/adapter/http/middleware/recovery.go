package middleware

import (
	"net/http"

	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the usual error body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
