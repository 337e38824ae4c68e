// internal/api/router.go
package api

import (
	"strconv"
	"time"

	"astral-content/internal/common/config"
	"astral-content/internal/common/logger"
	"astral-content/internal/common/metrics"
	"astral-content/internal/locale"
	"astral-content/internal/newsletter"
	"astral-content/internal/prompt"
	"astral-content/internal/subscriber"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server bundles the handler dependencies.
type Server struct {
	cfg         *config.Config
	locales     *locale.Service
	responses   *ResponseBuilder
	subscribers *subscriber.Service
	composer    *prompt.LocalizedComposer
	newsletters *newsletter.Service
	logger      logger.Logger
}

func NewServer(
	cfg *config.Config,
	locales *locale.Service,
	responses *ResponseBuilder,
	subscribers *subscriber.Service,
	composer *prompt.LocalizedComposer,
	newsletters *newsletter.Service,
	log logger.Logger,
) *Server {
	return &Server{
		cfg:         cfg,
		locales:     locales,
		responses:   responses,
		subscribers: subscribers,
		composer:    composer,
		newsletters: newsletters,
		logger:      log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

// NewRouter builds the gin engine with middleware and routes.
func (s *Server) NewRouter() *gin.Engine {
	if s.cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID())
	router.Use(s.requestLog())

	router.GET("/api/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/signup", s.handleSignup)
		apiGroup.POST("/content/preview", s.handleContentPreview)
		apiGroup.POST("/newsletter/dispatch", s.handleNewsletterDispatch)
	}

	return router
}

// requestID attaches a request ID to the context and response.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLog emits one structured event per request and feeds the HTTP
// metrics. Request bodies are never logged.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(path).Observe(elapsed.Seconds())

		s.logger.Info("request handled", map[string]interface{}{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"elapsedMs": elapsed.Milliseconds(),
			"requestId": c.GetString("requestID"),
		})
	}
}

// write sends a built Response through gin.
func write(c *gin.Context, resp *Response) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.JSON(resp.Status, resp.Body)
}
