package server

import (
	"net/http"
	"strconv"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/stagger"
	"github.com/gin-gonic/gin"
)

type revealEvent struct {
	Index   int   `json:"index"`
	DelayMS int64 `json:"delay_ms"`
}

// reveal streams one "reveal" event per item as its entrance timer fires,
// then a "done" event. The timers belong to this request: a client that
// disconnects cancels whatever has not fired.
func (s *Server) reveal(c *gin.Context) {
	p, ok := nav.Lookup(c.Param("page"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page"})
		return
	}
	count := s.revealCount(c.Query("count"))

	seq := stagger.NewSequence(count, p.Step)
	revealed := make(chan stagger.Descriptor, count)
	seq.Start(func(d stagger.Descriptor) { revealed <- d })
	defer seq.Stop()

	s.metrics.RevealStreamsActive.Inc()
	defer s.metrics.RevealStreamsActive.Dec()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for sent := 0; sent < count; sent++ {
		select {
		case <-ctx.Done():
			s.log.Debug("Reveal stream closed by client",
				logger.String("page", p.Slug),
				logger.Int("sent", sent),
				logger.Int("count", count),
			)
			return
		case d := <-revealed:
			c.SSEvent("reveal", revealEvent{Index: d.Index, DelayMS: d.DelayMillis()})
			c.Writer.Flush()
		}
	}
	c.SSEvent("done", gin.H{"count": count})
	c.Writer.Flush()
}

// revealCount parses the requested item count. Malformed or negative
// values degrade to zero; large ones are capped.
func (s *Server) revealCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	if limit := s.cfg.Animation.MaxItems; n > limit {
		return limit
	}
	return n
}
