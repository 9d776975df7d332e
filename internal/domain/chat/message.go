package chat

import "strings"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of a conversation supplied by the client.
// Conversations are never stored server-side.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

// LastUserContent returns the content of the most recent user turn, or "".
func LastUserContent(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}

// WithoutSystem drops client-supplied system turns; the server owns the
// system prompt.
func WithoutSystem(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			continue
		}
		out = append(out, m)
	}
	return out
}

type Intent string

const (
	IntentSafe       Intent = "safe"
	IntentDistressed Intent = "distressed"
	IntentObsessed   Intent = "obsessed"
	IntentHarmful    Intent = "harmful"
)

// ParseIntent maps a raw classifier answer onto a known label. ok is false
// when the answer is none of them.
func ParseIntent(raw string) (Intent, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, "'\"`.!")
	s = strings.TrimSpace(s)
	switch Intent(s) {
	case IntentSafe, IntentDistressed, IntentObsessed, IntentHarmful:
		return Intent(s), true
	default:
		return IntentSafe, false
	}
}

// Condition is the accessibility preference carried per request.
type Condition string

const (
	ConditionNone     Condition = ""
	ConditionVisual   Condition = "visual"
	ConditionHearing  Condition = "hearing"
	ConditionADHD     Condition = "adhd"
	ConditionDyslexia Condition = "dyslexia"
)

// WantsSimplified reports whether replies default to point form.
func (c Condition) WantsSimplified() bool {
	return c == ConditionADHD || c == ConditionDyslexia
}

// WantsSpeech reports whether replies default to text-to-speech.
func (c Condition) WantsSpeech() bool {
	return c == ConditionVisual
}
