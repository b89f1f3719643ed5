package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/visits"
	"github.com/gin-gonic/gin"
)

const (
	adminCookie    = "admin_token"
	adminCookieTTL = 24 * 3600
	adminPath      = "/admin"
	visitorsLimit  = 200
)

type adminPageView struct {
	Error string
	Stats *visits.Stats
}

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", adminPageView{})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", s.adminLogout)

	group := r.Group(adminPath)
	group.Use(s.adminAuth())
	group.GET("/dashboard", s.adminDashboard)
	group.GET("/api/stats", s.adminStats)
	group.GET("/visitors", s.adminVisitors)
	group.GET("/export/stats", s.adminExport)
	group.POST("/privacy/cleanup", s.adminCleanup)
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) adminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	visitor := s.hasher.Hash(c.ClientIP())

	// Both comparisons always run.
	userOK := equal(username, s.cfg.Admin.Username)
	passOK := equal(password, s.cfg.Admin.Password)
	if !userOK || !passOK {
		s.log.Warn("Failed admin login", logger.String("visitor", visitor))
		c.HTML(http.StatusUnauthorized, "admin-login.html", adminPageView{Error: "Invalid credentials"})
		return
	}

	c.SetCookie(adminCookie, s.adminToken, adminCookieTTL, adminPath, "", !s.cfg.Service.Debug, true)
	s.log.Info("Admin login", logger.String("visitor", visitor))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, adminPath, "", !s.cfg.Service.Debug, true)
	s.log.Info("Admin logout", logger.String("visitor", s.hasher.Hash(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) adminDashboard(c *gin.Context) {
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("Failed to load visit stats", logger.Error(err))
		c.HTML(http.StatusInternalServerError, "admin-error.html", adminPageView{Error: "Failed to load statistics"})
		return
	}
	c.HTML(http.StatusOK, "admin-dashboard.html", adminPageView{Stats: stats})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("Failed to load visit stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminVisitors(c *gin.Context) {
	recent, err := s.visits.Recent(c.Request.Context(), visitorsLimit)
	if err != nil {
		s.log.Error("Failed to load visitors", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visitors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visitors": recent})
}

func (s *Server) adminExport(c *gin.Context) {
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("Failed to export visit stats", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=visit-stats.json")
	s.log.Info("Visit stats exported", logger.String("visitor", s.hasher.Hash(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminCleanup(c *gin.Context) {
	n, err := s.visits.Cleanup(c.Request.Context(), s.cfg.Privacy.Retention)
	if err != nil {
		s.log.Error("Visit cleanup failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	s.log.Info("Visit cleanup", logger.Int64("deleted", n))
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
