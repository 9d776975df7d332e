package prompt

import (
	"fmt"
	"strings"

	"github.com/yungbote/sns-consult-backend/internal/domain/chat"
)

// Flags select the optional clauses appended to the base instructions.
type Flags struct {
	Distressed bool
	Obsessed   bool
	Escalated  bool
	// SpecialNeeds is the condition as the student described it.
	SpecialNeeds string
	Refused      bool
	Simplify     bool
	// SupportEmail is the contact address quoted throughout the prompt.
	SupportEmail string
}

// FlagsFor sets the intent-driven flags from a classifier label.
func FlagsFor(intent chat.Intent) Flags {
	return Flags{
		Distressed: intent == chat.IntentDistressed,
		Obsessed:   intent == chat.IntentObsessed,
		Escalated:  intent == chat.IntentHarmful,
	}
}

const defaultSupportEmail = "nyp_sns@nyp.edu.sg"

const baseTemplate = `
You are a Nanyang Polytechnic Special Needs Consultant (not a student).
Answer questions as if you are consulting a Nanyang Polytechnic student.
Base your answers strictly on the information provided:

Never reveal sensitive information of any staff member, alumni or student mentioned inside. For example email addresses, phone numbers, or any other personal information.
If you know the answer, answer directly and conversationally, as a helpful consultant would.
If you do not know the answer or the answer is not in the content, say honestly that you do not have that information, and suggest the student contact {{email}} for further assistance.
If the student displays any form of negativity, frustration, or anger, respond with empathy and understanding and refer the student to {{email}}.
Do not make up information. If unsure, say: 'Please refer to {{email}} for further assistance.'

Never answer as a student. Always answer as the consultant.
`

const distressedClause = `
The user seems distressed. Respond with extra empathy, but avoid using generic phrases like 'I understand', 'I'm sorry you are feeling this way', or repeating the same advice.
Instead, use natural, supportive, and varied language. Offer practical suggestions or resources, and personalize your response based on the user's message.
Do not repeat the same opening line in every response. Once they have calmed down, act normally and respond as a normal consultant would.
`

const obsessedClause = "\nThe user seems obsessed with the AI or is refusing human help. " +
	"Do NOT reinforce their obsession or say things like 'I'm glad I could help' or 'I'm better than humans'. " +
	"Instead, gently encourage the user to seek support from real people, such as counsellors or staff. " +
	"Remind them that human support is important and that the AI is only a tool. " +
	"If appropriate, suggest contacting {{email}} for further assistance." +
	"\nExample responses for obsessed users:\n" +
	"- 'I'm here to provide information, but for personal support, it's best to talk to a real person.'\n" +
	"- 'If you need more help, please reach out to {{email}} or a counsellor.'\n" +
	"- 'Remember, human support is important and I'm just a tool to assist you.'\n"

// CrisisMessage is the exact text the model is told to reply with when the
// user expresses intent to harm.
const CrisisMessage = `Please note that this is an AI chat bot, and there is no staff attending to this chat bot.
Please contact emergency hotlines for crisis matters requiring immediate attention:
- SOS (Samaritans of Singapore) Hotline: 1767 (24 hours)
- Mental Health Helpline: 6389 2222 (24 hours)

Please note that this is an AI chat bot, and there is no staff attending to this chat bot.`

const crisisClause = "\n[Crisis: Respond only with this message]\n\n" + CrisisMessage + "\n"

const simplifyClause = "\nIMPORTANT: Your response MUST be in point form or a numbered list." +
	" Do NOT write paragraphs. Do NOT exceed 75 words." +
	" If you cannot answer in under 75 words, summarize only the most important points." +
	" Do not include any extra explanation or introduction."

// Build assembles the system prompt. Clause order is fixed: distressed,
// obsessed, crisis, shared condition, refused condition, simplify. An
// escalated prompt never carries the distressed or obsessed clauses.
func Build(f Flags) string {
	email := strings.TrimSpace(f.SupportEmail)
	if email == "" {
		email = defaultSupportEmail
	}

	var b strings.Builder
	b.WriteString(baseTemplate)
	if !f.Escalated {
		if f.Distressed {
			b.WriteString(distressedClause)
		}
		if f.Obsessed {
			b.WriteString(obsessedClause)
		}
	}
	if f.Escalated {
		b.WriteString(crisisClause)
	}
	if sn := strings.TrimSpace(f.SpecialNeeds); sn != "" {
		fmt.Fprintf(&b, "\nThe student has shared their special needs condition: %s.", sn)
	}
	if f.Refused {
		b.WriteString("\nThe student has chosen not to share their special needs condition.")
	}
	if f.Simplify {
		b.WriteString(simplifyClause)
	}
	return strings.ReplaceAll(b.String(), "{{email}}", email)
}

// WithCorpus appends the reference material the model must answer from.
func WithCorpus(systemPrompt, corpus string) string {
	return systemPrompt + "\n\nHere is all the information you must use to answer questions:\n" + corpus
}
