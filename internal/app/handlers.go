package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/http"
	httpH "github.com/yungbote/sns-consult-backend/internal/http/handlers"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Chat   *httpH.ChatHandler
	Audio  *httpH.AudioHandler
	TTS    *httpH.TTSHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, corpusChars int) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(httpH.HealthInfo{
			Version:     cfg.Version,
			Environment: cfg.Environment,
			CorpusChars: corpusChars,
		}),
		Chat:  httpH.NewChatHandler(log, services.Chat),
		Audio: httpH.NewAudioHandler(log, services.Minutes, cfg.MaxUploadBytes),
		TTS:   httpH.NewTTSHandler(log, services.Speech),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:                log,
		Metrics:            metrics,
		ServiceName:        observability.ServiceName,
		CORSOrigins:        cfg.CORSOrigins,
		MaxMultipartMemory: 8 << 20,
		ChatHandler:        handlers.Chat,
		AudioHandler:       handlers.Audio,
		TTSHandler:         handlers.TTS,
		HealthHandler:      handlers.Health,
	})
}
