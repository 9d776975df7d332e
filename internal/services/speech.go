package services

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/yungbote/sns-consult-backend/internal/platform/apierr"
	"github.com/yungbote/sns-consult-backend/internal/platform/ctxutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/platform/openai"
)

// MaxSpeechChars is the hosted TTS input limit.
const MaxSpeechChars = 4096

type SpeechService interface {
	// Synthesize returns an MPEG audio stream; the caller closes it.
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}

type speechService struct {
	log *logger.Logger
	ai  openai.Client
}

func NewSpeechService(baseLog *logger.Logger, ai openai.Client) SpeechService {
	return &speechService{log: baseLog.With("service", "SpeechService"), ai: ai}
}

func (s *speechService) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apierr.BadRequest("missing_text", "No text provided")
	}
	if r := []rune(text); len(r) > MaxSpeechChars {
		text = string(r[:MaxSpeechChars])
	}
	rc, err := s.ai.Speech(ctx, text)
	if err != nil {
		s.log.Error("speech synthesis failed", "request_id", ctxutil.RequestID(ctx), "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "tts_failed", "Failed to generate speech.", err)
	}
	return rc, nil
}
