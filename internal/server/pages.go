package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/stagger"
	"github.com/gin-gonic/gin"
)

// introCookie marks a visitor who has already seen the loading screen.
const (
	introCookie    = "intro_seen"
	introCookieTTL = 30 * 24 * 3600
)

type pageView struct {
	Site       config.SiteConfig
	Page       nav.Page
	Pages      []nav.Page
	Forward    string
	Back       string
	ForwardKey string
	BackKey    string
	LoadingMS  int64
}

type aboutView struct {
	pageView
	About      content.AboutPage
	Animations []stagger.Descriptor
	RevealURL  string
}

type collectionView struct {
	pageView
	State    page.State[any]
	ItemsURL string
}

type itemsView[T any] struct {
	Page       nav.Page
	State      page.State[T]
	Animations []stagger.Descriptor
	RevealURL  string
}

type privacyView struct {
	pageView
	RetentionDays int
}

func (s *Server) newPageView(c *gin.Context, p nav.Page) pageView {
	v := pageView{
		Site:       s.cfg.Site,
		Page:       p,
		Pages:      nav.Pages(),
		ForwardKey: nav.KeyForward,
		BackKey:    nav.KeyBack,
	}
	v.Forward, _ = nav.Target(p.Slug, nav.KeyForward)
	v.Back, _ = nav.Target(p.Slug, nav.KeyBack)

	// The loading screen plays once per visitor.
	if _, err := c.Cookie(introCookie); err != nil && s.cfg.Site.LoadingScreen > 0 {
		v.LoadingMS = s.cfg.Site.LoadingScreen.Milliseconds()
		c.SetCookie(introCookie, "1", introCookieTTL, "/", "", false, true)
	}
	return v
}

func revealURL(p nav.Page, count int) string {
	return fmt.Sprintf("/reveal/%s?count=%d", p.Slug, count)
}

func (s *Server) about(c *gin.Context) {
	p := mustPage("about")
	c.HTML(http.StatusOK, "about.html", aboutView{
		pageView:   s.newPageView(c, p),
		About:      content.About(),
		Animations: stagger.Generate(content.AboutSections, p.Step),
		RevealURL:  revealURL(p, content.AboutSections),
	})
}

// collection renders the page shell in the loading state; HTMX fetches
// the items fragment once the shell is on screen.
func (s *Server) collection(p nav.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "collection.html", collectionView{
			pageView: s.newPageView(c, p),
			State:    page.Loading[any](),
			ItemsURL: p.Path + "/items",
		})
	}
}

type tileLoader func(ctx context.Context, src content.Source) ([]content.Tile, error)

func tilesOf[T content.Tiler](load func(context.Context, content.Source) ([]T, error)) tileLoader {
	return func(ctx context.Context, src content.Source) ([]content.Tile, error) {
		items, err := load(ctx, src)
		if err != nil {
			return nil, err
		}
		return content.Tiles(items), nil
	}
}

func (s *Server) tileItems(p nav.Page, load tileLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tiles, err := load(c.Request.Context(), s.content)
		renderItems(s, c, "tiles.html", p, tiles, err)
	}
}

func (s *Server) experienceItems(p nav.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := content.Experiences(c.Request.Context(), s.content)
		renderItems(s, c, "experience-items.html", p, items, err)
	}
}

// renderItems writes the items fragment. A failed load renders a single
// message and no list.
func renderItems[T any](s *Server, c *gin.Context, name string, p nav.Page, items []T, err error) {
	if err != nil {
		s.log.Error("Failed to load page content",
			logger.String("page", p.Slug),
			logger.Error(err),
		)
		s.metrics.ContentLoadFailures.WithLabelValues(p.Slug).Inc()
	}
	c.HTML(http.StatusOK, name, newItemsView(p, items, err))
}

func newItemsView[T any](p nav.Page, items []T, err error) itemsView[T] {
	if err != nil {
		return itemsView[T]{Page: p, State: page.Failed[T](fmt.Sprintf("Failed to fetch %s data", p.Title))}
	}
	st := page.Ready(items)
	return itemsView[T]{
		Page:       p,
		State:      st,
		Animations: st.Animations(p.Step),
		RevealURL:  revealURL(p, len(st.Items())),
	}
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", privacyView{
		pageView:      s.newPageView(c, nav.Page{Slug: "privacy", Path: "/privacy", Title: "privacy"}),
		RetentionDays: int(s.cfg.Privacy.Retention.Hours() / 24),
	})
}

func (s *Server) notFound(c *gin.Context) {
	v := s.newPageView(c, nav.Page{Slug: "not-found", Title: "404"})
	home := mustPage("about")
	v.Forward, v.Back = home.Path, home.Path
	c.HTML(http.StatusNotFound, "not-found.html", v)
}
