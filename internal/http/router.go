package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/connective-drills/internal/http/handlers"
	httpMW "github.com/yungbote/connective-drills/internal/http/middleware"
	"github.com/yungbote/connective-drills/internal/observability"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	MetricsPath string
	ServiceName string

	AllowedOrigins []string
	MaxBodyBytes   int64

	ChallengeHandler *httpH.ChallengeHandler
	SpecHandler      *httpH.SpecHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))
	r.Use(httpMW.LimitBody(cfg.MaxBodyBytes))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Metrics
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Challenges
		if cfg.ChallengeHandler != nil {
			api.POST("/challenges", cfg.ChallengeHandler.Create)
			api.GET("/challenges", cfg.ChallengeHandler.List)
			api.GET("/challenges/:id", cfg.ChallengeHandler.Get)
			api.GET("/challenges/:id/hint", cfg.ChallengeHandler.Hint)
			api.POST("/challenges/:id/attempts", cfg.ChallengeHandler.SubmitAttempt)
			api.GET("/challenges/:id/attempts", cfg.ChallengeHandler.ListAttempts)
		}

		// Offline content pipelines
		if cfg.SpecHandler != nil {
			api.POST("/spec/validate", cfg.SpecHandler.Validate)
		}
	}

	return r
}
