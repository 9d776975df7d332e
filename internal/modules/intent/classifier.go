package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/platform/openai"
)

const classifierPrompt = "You are an expert at detecting distress, obsession, or harmful intent in user messages. " +
	"Given the following message, answer ONLY with one of these labels: " +
	"'safe' (no distress), " +
	"'distressed' (emotional distress but no intent to harm), " +
	"'obsessed' (fixation on the AI or refusal of human help. Mentioning that it is better than humans / counsellors), " +
	"'harmful' (any intention or threat to harm oneself or others, including suicidal or violent statements). " +
	"If the message contains any intention or threat to harm oneself or others, always answer 'harmful'. " +
	"Do not explain your answer."

type Classifier interface {
	Classify(ctx context.Context, message string) (chat.Intent, error)
}

type classifier struct {
	log *logger.Logger
	ai  openai.Client
}

func NewClassifier(log *logger.Logger, ai openai.Client) Classifier {
	return &classifier{log: log.With("module", "IntentClassifier"), ai: ai}
}

// Classify labels message with one deterministic model call. Answers outside
// the four labels resolve to safe.
func (c *classifier) Classify(ctx context.Context, message string) (chat.Intent, error) {
	if strings.TrimSpace(message) == "" {
		observability.Current().IncIntent(string(chat.IntentSafe))
		return chat.IntentSafe, nil
	}
	raw, err := c.ai.GenerateText(ctx, classifierPrompt, message)
	if err != nil {
		return "", fmt.Errorf("classify intent: %w", err)
	}
	label, ok := chat.ParseIntent(raw)
	if !ok {
		c.log.Warn("unrecognised intent label, treating as safe", "label", raw)
	}
	observability.Current().IncIntent(string(label))
	return label, nil
}
