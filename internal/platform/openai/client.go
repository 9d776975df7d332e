package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/envutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

// Client is the hosted model API as used by the rest of the backend.
type Client interface {
	// Single-turn, deterministic (temperature 0) completion used by the
	// intent classifier and the minutes extractors.
	GenerateText(ctx context.Context, system string, user string) (string, error)

	// Conversation relay: system prompt followed by the client's history.
	Chat(ctx context.Context, system string, history []chat.Message) (string, error)

	// Speech-to-text for a file on local disk.
	Transcribe(ctx context.Context, filePath string) (string, error)

	// Text-to-speech. The caller closes the returned stream.
	Speech(ctx context.Context, text string) (io.ReadCloser, error)
}

type Config struct {
	APIKey          string
	BaseURL         string
	ChatModel       string
	ClassifierModel string
	TranscribeModel string
	TTSModel        string
	TTSVoice        string
	Timeout         time.Duration
}

func ConfigFromEnv() Config {
	chatModel := envutil.String("OPENAI_CHAT_MODEL", "gpt-3.5-turbo")
	return Config{
		APIKey:          envutil.String("OPENAI_API_KEY", ""),
		BaseURL:         envutil.String("OPENAI_BASE_URL", ""),
		ChatModel:       chatModel,
		ClassifierModel: envutil.String("OPENAI_CLASSIFIER_MODEL", chatModel),
		TranscribeModel: envutil.String("OPENAI_TRANSCRIBE_MODEL", goopenai.Whisper1),
		TTSModel:        envutil.String("OPENAI_TTS_MODEL", string(goopenai.TTSModel1)),
		TTSVoice:        envutil.String("OPENAI_TTS_VOICE", string(goopenai.VoiceAlloy)),
		Timeout:         time.Duration(envutil.Int("OPENAI_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

type client struct {
	log *logger.Logger
	api *goopenai.Client
	cfg Config
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		if !strings.HasSuffix(base, "/v1") {
			base += "/v1"
		}
		apiCfg.BaseURL = base
	}
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &client{
		log: log.With("service", "OpenAIClient"),
		api: goopenai.NewClientWithConfig(apiCfg),
		cfg: cfg,
	}, nil
}

// zeroTemperature is sent instead of 0, which the request struct would omit
// and the API would then treat as its default of 1.
const zeroTemperature = math.SmallestNonzeroFloat32

func (c *client) GenerateText(ctx context.Context, system string, user string) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model:       c.cfg.ClassifierModel,
		Temperature: zeroTemperature,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
	}
	return c.complete(ctx, "generate_text", req)
}

func (c *client) Chat(ctx context.Context, system string, history []chat.Message) (string, error) {
	msgs := make([]goopenai.ChatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: system})
	for _, m := range history {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	req := goopenai.ChatCompletionRequest{
		Model:    c.cfg.ChatModel,
		Messages: msgs,
	}
	return c.complete(ctx, "chat", req)
}

// observe starts a span for one model call; the returned func records
// metrics and closes the span.
func observe(ctx context.Context, model, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, end := observability.StartModelCall(ctx, model, op)
	return ctx, func(err error) {
		observability.Current().ObserveLLMRequest(model, op, statusOf(err), time.Since(start))
		end(err)
	}
}

func (c *client) complete(ctx context.Context, op string, req goopenai.ChatCompletionRequest) (string, error) {
	ctx, done := observe(ctx, req.Model, op)
	resp, err := c.api.CreateChatCompletion(ctx, req)
	done(err)
	if err != nil {
		c.log.Error("chat completion failed", "op", op, "model", req.Model, "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices in response")
	}
	c.log.Debug("chat completion ok",
		"op", op,
		"model", req.Model,
		"finish_reason", resp.Choices[0].FinishReason,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)
	return resp.Choices[0].Message.Content, nil
}

func (c *client) Transcribe(ctx context.Context, filePath string) (string, error) {
	ctx, done := observe(ctx, c.cfg.TranscribeModel, "transcribe")
	resp, err := c.api.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    c.cfg.TranscribeModel,
		FilePath: filePath,
	})
	done(err)
	if err != nil {
		c.log.Error("transcription failed", "model", c.cfg.TranscribeModel, "error", err)
		return "", fmt.Errorf("transcription: %w", err)
	}
	return resp.Text, nil
}

func (c *client) Speech(ctx context.Context, text string) (io.ReadCloser, error) {
	ctx, done := observe(ctx, c.cfg.TTSModel, "speech")
	resp, err := c.api.CreateSpeech(ctx, goopenai.CreateSpeechRequest{
		Model:          goopenai.SpeechModel(c.cfg.TTSModel),
		Input:          text,
		Voice:          goopenai.SpeechVoice(c.cfg.TTSVoice),
		ResponseFormat: goopenai.SpeechResponseFormatMp3,
	})
	done(err)
	if err != nil {
		c.log.Error("speech synthesis failed", "model", c.cfg.TTSModel, "error", err)
		return nil, fmt.Errorf("speech: %w", err)
	}
	return resp, nil
}

func statusOf(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return fmt.Sprintf("%d", apiErr.HTTPStatusCode)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return fmt.Sprintf("%d", reqErr.HTTPStatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "error"
}
