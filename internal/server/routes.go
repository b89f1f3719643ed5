package server

import (
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/web"
	"github.com/gin-gonic/gin"
)

func (s *Server) routes() {
	r := s.engine

	r.StaticFS("/static", http.FS(web.Static()))
	r.StaticFS("/data", http.FS(web.Data()))

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/privacy", s.privacy)

	r.GET("/", s.about)

	experience := mustPage("experience")
	r.GET(experience.Path, s.collection(experience))
	r.GET(experience.Path+"/items", s.experienceItems(experience))

	for _, t := range []struct {
		slug string
		load tileLoader
	}{
		{"achievements", tilesOf(content.Achievements)},
		{"certifications", tilesOf(content.Certifications)},
		{"projects", tilesOf(content.Projects)},
	} {
		p := mustPage(t.slug)
		r.GET(p.Path, s.collection(p))
		r.GET(p.Path+"/items", s.tileItems(p, t.load))
	}

	r.GET("/reveal/:page", s.reveal)

	if s.cfg.Admin.Enabled {
		s.adminRoutes(r)
	}

	r.NoRoute(s.notFound)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   s.cfg.Service.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func mustPage(slug string) nav.Page {
	p, ok := nav.Lookup(slug)
	if !ok {
		panic("server: unknown page " + slug)
	}
	return p
}
