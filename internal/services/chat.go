package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
	"github.com/yungbote/sns-consult-backend/internal/modules/intent"
	"github.com/yungbote/sns-consult-backend/internal/modules/prompt"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/apierr"
	"github.com/yungbote/sns-consult-backend/internal/platform/ctxutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/platform/openai"
)

type ChatRequest struct {
	Messages []chat.Message `json:"messages" binding:"dive"`
	// SpecialNeeds is free text the client already collected, e.g.
	// "visual impairment" or "adhd/dyslexia".
	SpecialNeeds     string `json:"specialNeeds"`
	RefusedCondition bool   `json:"refusedCondition"`
	Simplify         bool   `json:"simplify"`
	VoiceMode        bool   `json:"voiceMode"`
}

type ChatReply struct {
	Response     string      `json:"response"`
	TTS          bool        `json:"tts"`
	Simplify     bool        `json:"simplify"`
	SpecialNeeds string      `json:"specialNeeds"`
	Intent       chat.Intent `json:"-"`
}

type ChatService interface {
	Reply(ctx context.Context, req ChatRequest) (*ChatReply, error)
}

type chatService struct {
	log          *logger.Logger
	ai           openai.Client
	classifier   intent.Classifier
	corpus       string
	supportEmail string
}

// NewChatService takes the corpus already redacted; it is read-only from
// here on.
func NewChatService(
	baseLog *logger.Logger,
	ai openai.Client,
	classifier intent.Classifier,
	corpus string,
	supportEmail string,
) ChatService {
	return &chatService{
		log:          baseLog.With("service", "ChatService"),
		ai:           ai,
		classifier:   classifier,
		corpus:       corpus,
		supportEmail: supportEmail,
	}
}

func (s *chatService) Reply(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	if len(req.Messages) == 0 {
		return nil, apierr.BadRequest("missing_messages", "No messages provided")
	}
	log := s.log.With("request_id", ctxutil.RequestID(ctx))

	last := chat.LastUserContent(req.Messages)
	shared := strings.TrimSpace(req.SpecialNeeds)

	var condition chat.Condition
	switch {
	case shared != "":
		condition = intent.DetectCondition(shared)
	case !req.RefusedCondition:
		condition = intent.DetectCondition(last)
	}
	observability.Current().IncCondition(string(condition))

	label, err := s.classifier.Classify(ctx, last)
	if err != nil {
		log.Error("intent classification failed", "error", err)
		return nil, apierr.Internal("intent_failed", err)
	}

	flags := prompt.FlagsFor(label)
	flags.Refused = req.RefusedCondition && shared == ""
	flags.Simplify = req.Simplify || condition.WantsSimplified()
	flags.SupportEmail = s.supportEmail
	flags.SpecialNeeds = shared
	if flags.SpecialNeeds == "" {
		flags.SpecialNeeds = string(condition)
	}

	log.Info("chat turn classified",
		"intent", label,
		"condition", condition,
		"refused_condition", flags.Refused,
		"simplify", flags.Simplify,
		"voice_mode", req.VoiceMode,
		"turns", len(req.Messages),
	)

	system := prompt.WithCorpus(prompt.Build(flags), s.corpus)
	answer, err := s.ai.Chat(ctx, system, chat.WithoutSystem(req.Messages))
	if err != nil {
		log.Error("chat completion failed", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "chat_failed", "Failed to get a response. Please try again later.", err)
	}

	reply := &ChatReply{
		Response:     answer,
		TTS:          req.VoiceMode || condition.WantsSpeech(),
		Simplify:     flags.Simplify,
		SpecialNeeds: shared,
		Intent:       label,
	}
	if condition != chat.ConditionNone {
		reply.SpecialNeeds = string(condition)
	}
	return reply, nil
}
