package app

import (
	"github.com/yungbote/sns-consult-backend/internal/modules/intent"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/services"
)

type Services struct {
	Chat    services.ChatService
	Minutes services.MinutesService
	Speech  services.SpeechService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, corpus string) Services {
	log.Info("Wiring services...")
	classifier := intent.NewClassifier(log, clients.OpenAI)
	return Services{
		Chat: services.NewChatService(log, clients.OpenAI, classifier, corpus, cfg.SupportEmail),
		Minutes: services.NewMinutesService(log, clients.OpenAI, clients.Artifacts, services.MinutesConfig{
			UploadDir:      cfg.UploadDir,
			MaxUploadBytes: cfg.MaxUploadBytes,
		}),
		Speech: services.NewSpeechService(log, clients.OpenAI),
	}
}
