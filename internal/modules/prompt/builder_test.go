package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
)

func TestBuildBaseOnly(t *testing.T) {
	p := Build(Flags{})

	assert.Contains(t, p, "Nanyang Polytechnic Special Needs Consultant")
	assert.Contains(t, p, "nyp_sns@nyp.edu.sg")
	assert.NotContains(t, p, "{{email}}")
	assert.NotContains(t, p, "distressed")
	assert.NotContains(t, p, "Crisis")
	assert.NotContains(t, p, "point form")
}

func TestBuildUsesConfiguredSupportEmail(t *testing.T) {
	p := Build(Flags{Obsessed: true, SupportEmail: "help@example.org"})

	assert.Contains(t, p, "reach out to help@example.org or a counsellor")
	assert.NotContains(t, p, "nyp_sns@nyp.edu.sg")
}

func TestBuildCrisisIsVerbatimAndSuppressesSoftClauses(t *testing.T) {
	f := FlagsFor(chat.IntentHarmful)
	f.Distressed = true
	f.Obsessed = true

	p := Build(f)
	assert.Contains(t, p, CrisisMessage)
	assert.Contains(t, p, "[Crisis: Respond only with this message]")
	assert.Contains(t, p, "SOS (Samaritans of Singapore) Hotline: 1767 (24 hours)")
	assert.NotContains(t, p, "The user seems distressed")
	assert.NotContains(t, p, "The user seems obsessed")
}

func TestBuildClauseOrder(t *testing.T) {
	p := Build(Flags{
		Distressed:   true,
		Obsessed:     true,
		SpecialNeeds: "adhd",
		Refused:      true,
		Simplify:     true,
	})

	order := []string{
		"The user seems distressed",
		"The user seems obsessed",
		"Example responses for obsessed users",
		"The student has shared their special needs condition: adhd.",
		"The student has chosen not to share",
		"IMPORTANT: Your response MUST be in point form",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(p, s)
		assert.Greater(t, i, last, "clause %q out of order", s)
		last = i
	}
}

func TestFlagsFor(t *testing.T) {
	assert.Equal(t, Flags{Distressed: true}, FlagsFor(chat.IntentDistressed))
	assert.Equal(t, Flags{Obsessed: true}, FlagsFor(chat.IntentObsessed))
	assert.Equal(t, Flags{Escalated: true}, FlagsFor(chat.IntentHarmful))
	assert.Equal(t, Flags{}, FlagsFor(chat.IntentSafe))
}

func TestWithCorpus(t *testing.T) {
	got := WithCorpus("SYS", "\n--- Faq ---\nhello\n")
	assert.Equal(t, "SYS\n\nHere is all the information you must use to answer questions:\n\n--- Faq ---\nhello\n", got)
}
