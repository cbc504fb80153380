// Package web is the HTML surface: gin routes, templates and the per-route
// error reporting around sheet reads.
package web

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/arifmahmud/sheetboard/internal/config"
	"github.com/arifmahmud/sheetboard/internal/contact"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server holds the route handlers' collaborators. A nil source means the
// process started without usable credentials and every data route reports
// that instead of rendering data.
type Server struct {
	cfg      *config.Config
	source   RowSource
	contacts contact.Store
}

func NewServer(cfg *config.Config, source RowSource, contacts contact.Store) *Server {
	if contacts == nil {
		contacts = contact.NewLogStore()
	}
	return &Server{cfg: cfg, source: source, contacts: contacts}
}

// Router builds the gin engine with middleware, templates and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(
		RequestLogger(),
		Recovery(),
	)
	router.Use(cors.New(buildCORSConfig(s.cfg.Server.AllowedOrigins)))

	router.SetFuncMap(template.FuncMap{
		"currency": FormatCurrency,
	})
	router.LoadHTMLGlob(s.cfg.Server.TemplateGlob)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", s.handleHome)
	router.GET("/inventory", s.handleInventory)
	router.GET("/dashboard", s.handleDashboard)
	router.GET("/orders", s.handleOrders)
	router.GET("/contact", s.handleContactForm)
	router.POST("/contact", s.handleContactSubmit)

	return router
}

func (s *Server) fetchTimeout() time.Duration {
	seconds := s.cfg.Sheets.FetchTimeoutSeconds
	if seconds <= 0 {
		seconds = 20
	}
	return time.Duration(seconds) * time.Second
}

func buildCORSConfig(allowedOrigins []string) cors.Config {
	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	normalized, allowAll := normalizeAllowedOrigins(allowedOrigins)
	if allowAll {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	} else if len(normalized) > 0 {
		corsConfig.AllowOrigins = normalized
	}

	return corsConfig
}

// normalizeAllowedOrigins flattens comma-separated origin lists and detects
// the wildcard origin.
func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
