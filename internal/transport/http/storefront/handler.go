// Package storefront is the HTTP transport of the storefront. It plays the
// browser's part: GET requests move the router, form posts invoke the mounted
// screen's actions and are answered with a redirect.
package storefront

import (
	"context"
	"embed"
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/app"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/router"
)

//go:embed static/app.css
var staticFS embed.FS

// Loop runs work on the storefront's single logical thread.
type Loop interface {
	Call(ctx context.Context, fn func()) error
	Settle(ctx context.Context) error
}

type Handler struct {
	loop   Loop
	app    *app.App
	logger *log.Logger
}

func NewHandler(loop Loop, a *app.App, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{loop: loop, app: a, logger: logger}
}

// NewEngine builds the gin engine. allowedOrigins feeds the CORS policy of
// the JSON endpoints.
func NewEngine(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/healthz", h.health)
	r.GET("/api/state", h.state)
	r.GET("/partials/catalog-grid", h.catalogGrid)
	r.POST("/actions/:name", h.action)
	r.GET("/static/app.css", func(c *gin.Context) {
		c.FileFromFS("static/app.css", http.FS(staticFS))
	})
	r.NoRoute(h.page)
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// run executes fn on the loop and waits for the follow-up work it caused
// (route delivery, gate redirects) to drain.
func (h *Handler) run(ctx context.Context, fn func()) error {
	if err := h.loop.Call(ctx, fn); err != nil {
		return err
	}
	return h.loop.Settle(ctx)
}

func (h *Handler) page(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.String(http.StatusNotFound, "not found")
		return
	}

	target := c.Request.URL.Path
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	var screen app.Screen
	err := h.run(c.Request.Context(), func() { h.app.Visit(target) })
	if err == nil {
		err = h.loop.Call(c.Request.Context(), func() { screen = h.app.Screen() })
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	// The access gate moved us somewhere else: let the browser follow.
	if screen.Route.Path != router.Parse(target).Path {
		c.Redirect(http.StatusSeeOther, screen.Route.String())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(screen.HTML))
}

func (h *Handler) action(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	name := c.Param("name")

	var (
		screen app.Screen
		ext    string
		invErr error
	)
	err := h.run(c.Request.Context(), func() {
		out, err := h.app.Invoke(name, c.Request.PostForm)
		if err != nil {
			invErr = err
			return
		}
		ext = out.External
	})
	if err == nil {
		err = h.loop.Call(c.Request.Context(), func() { screen = h.app.Screen() })
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if invErr != nil {
		if errors.Is(invErr, app.ErrUnknownAction) {
			c.String(http.StatusNotFound, invErr.Error())
			return
		}
		h.fail(c, invErr)
		return
	}

	if ext != "" {
		c.Redirect(http.StatusSeeOther, ext)
		return
	}
	c.Redirect(http.StatusSeeOther, screen.Route.String())
}

func (h *Handler) catalogGrid(c *gin.Context) {
	var (
		html    string
		gridErr error
	)
	err := h.loop.Call(c.Request.Context(), func() {
		g, err := h.app.CatalogGrid(c.Request.URL.Query())
		html, gridErr = string(g), err
	})
	if err == nil {
		err = gridErr
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) state(c *gin.Context) {
	var snap app.Snapshot
	if err := h.loop.Call(c.Request.Context(), func() { snap = h.app.Snapshot() }); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Printf("[http] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusInternalServerError, "internal error")
}
