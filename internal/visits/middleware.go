package visits

import (
	"context"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/gin-gonic/gin"
)

// recordTimeout bounds a single background insert.
const recordTimeout = 5 * time.Second

// Recorder persists a visit.
type Recorder interface {
	Record(ctx context.Context, v Visit) error
}

// skippedPrefixes are never tracked: assets, machine endpoints, fragments
// and the admin area.
var skippedPrefixes = []string{
	"/static/",
	"/data/",
	"/admin",
	"/metrics",
	"/healthz",
	"/reveal/",
	"/favicon",
	"/privacy",
}

// Tracked reports whether a request path is recorded.
func Tracked(path string) bool {
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return !strings.HasSuffix(path, "/items")
}

// Track records successful page views in the background. Requests sending
// "DNT: 1" are never recorded.
func Track(rec Recorder, hasher *Hasher, log logger.Logger, onRecorded func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != "GET" || !Tracked(path) || c.GetHeader("DNT") == "1" {
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}

		v := Visit{
			HashedIP:  hasher.Hash(c.ClientIP()),
			UserAgent: c.Request.UserAgent(),
			Path:      path,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := rec.Record(ctx, v); err != nil {
				log.Warn("Failed to record visit", logger.String("path", v.Path), logger.Error(err))
				return
			}
			if onRecorded != nil {
				onRecorded()
			}
		}()
	}
}
