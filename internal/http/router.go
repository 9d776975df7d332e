package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/sns-consult-backend/internal/http/handlers"
	httpMW "github.com/yungbote/sns-consult-backend/internal/http/middleware"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string
	// MaxMultipartMemory bounds how much of an upload gin keeps in memory
	// before spilling to disk.
	MaxMultipartMemory int64

	ChatHandler   *httpH.ChatHandler
	AudioHandler  *httpH.AudioHandler
	TTSHandler    *httpH.TTSHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = cfg.MaxMultipartMemory
	}
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.RequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Chat
	if cfg.ChatHandler != nil {
		r.POST("/chat", cfg.ChatHandler.Chat)
	}

	// Audio minutes
	if cfg.AudioHandler != nil {
		r.POST("/upload-audio", cfg.AudioHandler.Upload)
		r.GET("/download-audio-docx", cfg.AudioHandler.Download)
	}

	// Speech
	if cfg.TTSHandler != nil {
		r.POST("/tts", cfg.TTSHandler.Speak)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
