package redact

import (
	"regexp"
	"strings"
)

const (
	EmailPlaceholder = "[REDACTED EMAIL]"
	PhonePlaceholder = "[REDACTED PHONE]"
	AgeReplacement   = "Age: [REDACTED]"
	NamePlaceholder  = "[REDACTED NAME]"
)

var (
	emailRE   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	sgPhoneRE = regexp.MustCompile(`\b[689]\d{7}\b`)
	digitsRE  = regexp.MustCompile(`\b\d{8,}\b`)
	ageRE     = regexp.MustCompile(`Age: ?\d+`)
)

// Redactor masks personal data in corpus text. It is safe for concurrent use.
//
// Substitutions run in a fixed order (emails, Singapore phones, long digit
// runs, ages, names) and no placeholder can be matched by a later pattern,
// so Redact is idempotent.
type Redactor struct {
	allowed   []string
	allowedRE *regexp.Regexp
	names     []*regexp.Regexp
}

func New(p Policy) *Redactor {
	r := &Redactor{}
	var quoted []string
	for _, e := range p.AllowedEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			r.allowed = append(r.allowed, e)
			quoted = append(quoted, regexp.QuoteMeta(e))
		}
	}
	if len(quoted) > 0 {
		r.allowedRE = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	for _, n := range p.Names {
		if n = strings.TrimSpace(n); n == "" {
			continue
		}
		r.names = append(r.names, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(n)+`\b`))
	}
	return r
}

// Redact masks text. Allow-listed addresses survive every pass, including
// when the text runs straight on after them ("help@x.sg.For").
func (r *Redactor) Redact(text string) string {
	if text == "" {
		return text
	}
	text = emailRE.ReplaceAllStringFunc(text, func(m string) string {
		if r.isAllowed(m) {
			return m
		}
		return EmailPlaceholder
	})
	if r.allowedRE == nil {
		return r.redactRest(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range r.allowedRE.FindAllStringIndex(text, -1) {
		b.WriteString(r.redactRest(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(r.redactRest(text[last:]))
	return b.String()
}

// isAllowed reports whether an email match begins with an allow-listed
// address that ends on a word boundary.
func (r *Redactor) isAllowed(match string) bool {
	m := strings.ToLower(match)
	for _, a := range r.allowed {
		if !strings.HasPrefix(m, a) {
			continue
		}
		if len(m) == len(a) || !isWordByte(m[len(a)]) {
			return true
		}
	}
	return false
}

func (r *Redactor) redactRest(text string) string {
	if text == "" {
		return text
	}
	text = sgPhoneRE.ReplaceAllLiteralString(text, PhonePlaceholder)
	text = digitsRE.ReplaceAllLiteralString(text, PhonePlaceholder)
	text = ageRE.ReplaceAllLiteralString(text, AgeReplacement)
	for _, re := range r.names {
		text = re.ReplaceAllLiteralString(text, NamePlaceholder)
	}
	return text
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
