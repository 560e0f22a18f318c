package router

import (
	"net/http"
	"time"

	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/handlers"
	"github.com/abrshewube/Google-Flights-Clone/internal/api/http/middleware"
	"github.com/abrshewube/Google-Flights-Clone/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Deps struct {
	Log            *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	Airports       *handlers.AirportHandler
	Calendar       *handlers.CalendarHandler
}

func New(d Deps) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.Recovery(d.Log),
	)

	if len(d.AllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     d.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	v1 := engine.Group("/v1")
	d.Airports.Register(v1)
	d.Calendar.Register(v1)

	return engine
}
