package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker receives product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// untrackedPaths are never reported.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware reports successful authenticated requests to tracker.
// The event name is derived from the method and route template,
// e.g. POST /api/v1/transactions -> "post_transactions".
func AnalyticsMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || untrackedPaths[c.Request.URL.Path] {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := EventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		tracker.Enqueue(userID, eventName, props)
	}
}

// EventName builds an analytics event name from an HTTP method and gin route template.
// Path parameters and the /api/v1 prefix are dropped.
func EventName(method, route string) string {
	route = strings.TrimPrefix(route, "/api/v1")
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(route, "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, seg)
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, "_")
}
