package intent

import (
	"strings"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
)

type keywordSet struct {
	condition chat.Condition
	keywords  []string
}

// Checked in order; the first set with a hit wins.
var conditionKeywords = []keywordSet{
	{chat.ConditionVisual, []string{"blind", "visual impairment", "visually impaired", "low vision"}},
	{chat.ConditionHearing, []string{"hearing impairment", "deafness", "deaf"}},
	{chat.ConditionADHD, []string{"attention deficit hyperactivity disorder", "adhd"}},
	{chat.ConditionDyslexia, []string{"dyslexia"}},
}

// DetectCondition maps free text onto an accessibility condition by
// case-insensitive substring match, or ConditionNone.
func DetectCondition(message string) chat.Condition {
	s := strings.ToLower(message)
	if strings.TrimSpace(s) == "" {
		return chat.ConditionNone
	}
	for _, set := range conditionKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(s, kw) {
				return set.condition
			}
		}
	}
	return chat.ConditionNone
}
