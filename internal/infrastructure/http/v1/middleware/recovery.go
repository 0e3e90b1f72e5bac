// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"capplan/internal/core/apperror"
	appctx "capplan/internal/core/context"
	"capplan/pkg/logger"
)

// Recovery turns a handler panic into an internal error for ErrorHandler.
// The stack goes to the log only, the client sees the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			logger.Error(ctx, "panic recovered",
				"route", c.FullPath(),
				"panic", rec,
				"stack", string(debug.Stack()),
			)

			_ = c.Error(apperror.NewInternal(fmt.Errorf("panic in %s: %v", c.FullPath(), rec)).
				WithDetail("request_id", appctx.RequestID(ctx)))
			c.Abort()
		}()
		c.Next()
	}
}
