package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
)

// fakeAI answers GenerateText by system prompt. Safe for concurrent use.
type fakeAI struct {
	mu sync.Mutex

	generate   map[string]string
	generateFn func(system, user string) (string, error)
	chatReply  string
	chatErr    error
	transcript string
	transErr   error
	speechErr  error

	generateCalls int
	lastSystem    string
	lastHistory   []chat.Message
	lastSpeech    string
	transcribed   []string
}

func (f *fakeAI) GenerateText(_ context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.generateCalls++
	fn, answers := f.generateFn, f.generate
	f.mu.Unlock()
	if fn != nil {
		return fn(system, user)
	}
	return answers[system], nil
}

func (f *fakeAI) Chat(_ context.Context, system string, history []chat.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSystem = system
	f.lastHistory = history
	return f.chatReply, f.chatErr
}

func (f *fakeAI) Transcribe(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcribed = append(f.transcribed, path)
	return f.transcript, f.transErr
}

func (f *fakeAI) Speech(_ context.Context, text string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSpeech = text
	if f.speechErr != nil {
		return nil, f.speechErr
	}
	return io.NopCloser(strings.NewReader("mp3:" + text)), nil
}

type fakeClassifier struct {
	label chat.Intent
	err   error
	seen  []string
}

func (c *fakeClassifier) Classify(_ context.Context, message string) (chat.Intent, error) {
	c.seen = append(c.seen, message)
	return c.label, c.err
}

var errUpstream = errors.New("upstream exploded: api key sk-secret")
