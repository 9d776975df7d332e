package intent

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

type fakeAI struct {
	answer string
	err    error
	calls  int
	system string
}

func (f *fakeAI) GenerateText(_ context.Context, system, _ string) (string, error) {
	f.calls++
	f.system = system
	return f.answer, f.err
}

func (f *fakeAI) Chat(context.Context, string, []chat.Message) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeAI) Transcribe(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeAI) Speech(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("not used")
}

func TestClassifyNormalisesAnswer(t *testing.T) {
	cases := map[string]chat.Intent{
		"safe":          chat.IntentSafe,
		"  Distressed ": chat.IntentDistressed,
		"'obsessed'":    chat.IntentObsessed,
		"HARMFUL.":      chat.IntentHarmful,
		"I think maybe": chat.IntentSafe,
	}
	for answer, want := range cases {
		ai := &fakeAI{answer: answer}
		got, err := NewClassifier(logger.Nop(), ai).Classify(t.Context(), "hello")
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", answer)
		assert.Equal(t, classifierPrompt, ai.system)
	}
}

func TestClassifyEmptyMessageSkipsModel(t *testing.T) {
	ai := &fakeAI{answer: "harmful"}
	got, err := NewClassifier(logger.Nop(), ai).Classify(t.Context(), "   ")
	require.NoError(t, err)
	assert.Equal(t, chat.IntentSafe, got)
	assert.Zero(t, ai.calls)
}

func TestClassifyPropagatesError(t *testing.T) {
	ai := &fakeAI{err: errors.New("boom")}
	_, err := NewClassifier(logger.Nop(), ai).Classify(t.Context(), "hello")
	require.Error(t, err)
}

func TestDetectCondition(t *testing.T) {
	cases := []struct {
		msg  string
		want chat.Condition
	}{
		{"I am Blind and need help", chat.ConditionVisual},
		{"I have low vision", chat.ConditionVisual},
		{"My friend is deaf", chat.ConditionHearing},
		{"diagnosed with ADHD last year", chat.ConditionADHD},
		{"Attention Deficit Hyperactivity Disorder", chat.ConditionADHD},
		{"I have dyslexia", chat.ConditionDyslexia},
		{"I have dyslexia and I'm visually impaired", chat.ConditionVisual},
		{"deaf and adhd", chat.ConditionHearing},
		{"I am blind and deaf", chat.ConditionVisual},
		{"hearing impairment and dyslexia", chat.ConditionHearing},
		{"I have ADHD and dyslexia", chat.ConditionADHD},
		{"how do I apply for the bursary?", chat.ConditionNone},
		{"", chat.ConditionNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectCondition(tc.msg), tc.msg)
	}
}
