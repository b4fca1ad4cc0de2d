package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cineverse/internal/microservices/http-api/middleware"
	"cineverse/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// dbTimeout bounds every database-backed request.
const dbTimeout = 5 * time.Second

const (
	msgInvalidBody = "Invalid request body"
	msgInternal    = "Internal server error"
)

var kindStatus = map[service.Kind]int{
	service.KindBadRequest:      http.StatusBadRequest,
	service.KindUnauthenticated: http.StatusUnauthorized,
	service.KindForbidden:       http.StatusForbidden,
	service.KindNotFound:        http.StatusNotFound,
	service.KindConflict:        http.StatusConflict,
}

// respondError writes {"error","code"} for a service error. Anything that is
// not a *service.Error is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		if status, ok := kindStatus[svcErr.Kind]; ok {
			c.JSON(status, gin.H{"error": svcErr.Message, "code": svcErr.Kind})
			return
		}
	}
	respondInternal(c, err)
}

func respondInternal(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "request failed",
		"error", err,
		"method", c.Request.Method,
		"route", c.FullPath(),
		"request_id", c.GetString(middleware.ContextKeyRequestID),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal, "code": service.KindInternal})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "code": service.KindBadRequest})
}

// requestContext derives the database deadline from the request.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), dbTimeout)
}

// requireUserID returns the caller's id; routes behind AuthMiddleware always have one.
func requireUserID(c *gin.Context) (string, bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided", "code": service.KindUnauthenticated})
		return "", false
	}
	return userID, true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
