package app

import (
	"context"
	"fmt"

	"github.com/yungbote/sns-consult-backend/internal/platform/artifact"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/platform/openai"
)

type Clients struct {
	OpenAI    openai.Client
	Artifacts artifact.Store
}

func wireClients(ctx context.Context, log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	ai, err := openai.NewClient(log, openai.ConfigFromEnv())
	if err != nil {
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	}

	storeCfg, err := artifact.ResolveConfigFromEnv()
	if err != nil {
		return Clients{}, fmt.Errorf("resolve artifact store config: %w", err)
	}
	store, err := artifact.New(ctx, log, storeCfg)
	if err != nil {
		return Clients{}, fmt.Errorf("init artifact store: %w", err)
	}

	return Clients{OpenAI: ai, Artifacts: store}, nil
}
