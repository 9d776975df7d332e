package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/sns-consult-backend/internal/domain/minutes"
	"github.com/yungbote/sns-consult-backend/internal/observability"
	"github.com/yungbote/sns-consult-backend/internal/platform/apierr"
	"github.com/yungbote/sns-consult-backend/internal/platform/artifact"
	"github.com/yungbote/sns-consult-backend/internal/platform/ctxutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/docx"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/platform/openai"
)

// LatestMinutesKey is the single artifact replaced by every upload.
const LatestMinutesKey = "latest/minutes.docx"

// AllowedAudioExtensions lists the accepted upload types, lower case
// without the dot.
var AllowedAudioExtensions = []string{"wav", "mp3", "mp4", "m4a"}

type MinutesConfig struct {
	UploadDir      string
	MaxUploadBytes int64
}

type MinutesService interface {
	// Validate rejects an upload by name and declared size before anything
	// is read or written.
	Validate(filename string, size int64) error
	Process(ctx context.Context, filename string, r io.Reader) (*minutes.Minutes, error)
	Latest(ctx context.Context) (io.ReadCloser, error)
}

type minutesService struct {
	log       *logger.Logger
	ai        openai.Client
	artifacts artifact.Store
	cfg       MinutesConfig
}

func NewMinutesService(
	baseLog *logger.Logger,
	ai openai.Client,
	artifacts artifact.Store,
	cfg MinutesConfig,
) MinutesService {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 25 << 20
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		cfg.UploadDir = os.TempDir()
	}
	return &minutesService{
		log:       baseLog.With("service", "MinutesService"),
		ai:        ai,
		artifacts: artifacts,
		cfg:       cfg,
	}
}

func (s *minutesService) Validate(filename string, size int64) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	allowed := false
	for _, a := range AllowedAudioExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		observability.Current().IncUpload("unsupported_type")
		return apierr.BadRequest(
			"unsupported_file_type",
			fmt.Sprintf("Unsupported file type. Allowed types: %s", strings.Join(AllowedAudioExtensions, ", ")),
		)
	}
	if size > s.cfg.MaxUploadBytes {
		observability.Current().IncUpload("too_large")
		return apierr.New(
			http.StatusRequestEntityTooLarge,
			"file_too_large",
			fmt.Sprintf("File is too large (%.1f MB). Maximum allowed size is %d MB.", float64(size)/(1<<20), s.cfg.MaxUploadBytes>>20),
			nil,
		)
	}
	return nil
}

func (s *minutesService) Process(ctx context.Context, filename string, r io.Reader) (*minutes.Minutes, error) {
	log := s.log.With("request_id", ctxutil.RequestID(ctx), "filename", filename)

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, apierr.Internal("upload_dir", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	tmpPath := filepath.Join(s.cfg.UploadDir, uuid.New().String()+ext)
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove temp upload", "path", tmpPath, "error", err)
		}
	}()

	// The limit is re-checked here since the declared size can lie.
	written, err := spool(tmpPath, io.LimitReader(r, s.cfg.MaxUploadBytes+1))
	if err != nil {
		observability.Current().IncUpload("error")
		return nil, apierr.Internal("upload_write", err)
	}
	if written > s.cfg.MaxUploadBytes {
		// Count what the limit cut off so the message reports the real size.
		rest, _ := io.Copy(io.Discard, r)
		written += rest
	}
	if err := s.Validate(filename, written); err != nil {
		return nil, err
	}

	start := time.Now()
	transcript, err := s.ai.Transcribe(ctx, tmpPath)
	if err != nil {
		observability.Current().IncUpload("error")
		log.Error("transcription failed", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "transcription_failed", "Failed to transcribe the audio file.", err)
	}

	m, err := s.extract(ctx, transcript)
	if err != nil {
		observability.Current().IncUpload("error")
		log.Error("minutes extraction failed", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "extraction_failed", "Failed to generate meeting minutes.", err)
	}

	if err := s.writeDocument(ctx, m); err != nil {
		observability.Current().IncUpload("error")
		log.Error("minutes document write failed", "error", err)
		return nil, apierr.Internal("document_write", err)
	}

	observability.Current().IncUpload("ok")
	log.Info("minutes generated", "bytes", written, "transcript_chars", len(transcript), "duration_ms", time.Since(start).Milliseconds())
	return m, nil
}

func (s *minutesService) Latest(ctx context.Context) (io.ReadCloser, error) {
	return s.artifacts.Open(ctx, LatestMinutesKey)
}

func spool(path string, r io.Reader) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, fmt.Errorf("create temp upload: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write temp upload: %w", err)
	}
	return n, nil
}

type extraction struct {
	prompt      string
	placeholder string
	target      *string
}

const (
	abstractSummaryPrompt = "You are a highly skilled AI trained in language comprehension and summarization. I would like you to read the following text and summarize it into a concise abstract paragraph. Aim to retain the most important points, providing a coherent and readable summary that could help a person understand the main points of the discussion without needing to read the entire text. Please avoid unnecessary details or tangential points."
	keyPointsPrompt       = "You are a proficient AI with a specialty in distilling information into key points. Based on the following text, identify and list the main points that were discussed or brought up. These should be the most important ideas, findings, or topics that are crucial to the essence of the discussion. Your goal is to provide a list that someone could read to quickly understand what was talked about."
	actionItemsPrompt     = "You are an AI expert in analyzing conversations and extracting action items. Please review the text and identify any tasks, assignments, or actions that were agreed upon or mentioned as needing to be done. These could be tasks assigned to specific individuals, or general actions that the group has decided to take. Please list these action items clearly and concisely."
	sentimentPrompt       = "As an AI with expertise in language and emotion analysis, your task is to analyze the sentiment of the following text. Please consider the overall tone of the discussion, the emotion conveyed by the language used, and the context in which words and phrases are used. Indicate whether the sentiment is generally positive, negative, or neutral, and provide brief explanations for your analysis where possible."
)

const (
	AbstractSummaryPlaceholder = "No summary could be generated for this recording."
	KeyPointsPlaceholder       = "No key points were identified in this recording."
	ActionItemsPlaceholder     = "No action items were identified in this recording."
	SentimentPlaceholder       = "The sentiment of this recording could not be determined."
)

// nonAnswerRE matches model replies that decline or ask for input instead of
// answering.
var nonAnswerRE = regexp.MustCompile(`(?i)^\s*(` +
	`i'?m sorry|i am sorry|sorry,|apologies|` +
	`i cannot|i can'?t|i'?m unable|i am unable|unfortunately,? (i|there)|` +
	`as an ai|` +
	`(please|could you|can you) provide|` +
	`there (is|are) no (text|transcript|content)|` +
	`no (text|transcript|content) (was )?provided` +
	`)`)

func isNonAnswer(s string) bool {
	return strings.TrimSpace(s) == "" || nonAnswerRE.MatchString(s)
}

// extract runs the four independent extractions concurrently. An empty
// transcript skips the model entirely.
func (s *minutesService) extract(ctx context.Context, transcript string) (*minutes.Minutes, error) {
	m := &minutes.Minutes{Transcript: transcript}
	jobs := []extraction{
		{abstractSummaryPrompt, AbstractSummaryPlaceholder, &m.AbstractSummary},
		{keyPointsPrompt, KeyPointsPlaceholder, &m.KeyPoints},
		{actionItemsPrompt, ActionItemsPlaceholder, &m.ActionItems},
		{sentimentPrompt, SentimentPlaceholder, &m.Sentiment},
	}
	if strings.TrimSpace(transcript) == "" {
		for _, j := range jobs {
			*j.target = j.placeholder
		}
		return m, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		g.Go(func() error {
			out, err := s.ai.GenerateText(gctx, j.prompt, transcript)
			if err != nil {
				return err
			}
			if isNonAnswer(out) {
				out = j.placeholder
			}
			*j.target = strings.TrimSpace(out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *minutesService) writeDocument(ctx context.Context, m *minutes.Minutes) error {
	doc := docx.New()
	for _, sec := range m.Sections() {
		doc.AddHeading(sec.Heading, 1)
		doc.AddParagraph(sec.Body)
		doc.AddParagraph("")
	}
	b, err := doc.Bytes()
	if err != nil {
		return err
	}
	return s.artifacts.Put(ctx, LatestMinutesKey, bytes.NewReader(b))
}
