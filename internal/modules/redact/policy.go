package redact

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy is the configurable half of redaction. The regex patterns are fixed.
type Policy struct {
	AllowedEmails []string `yaml:"allowed_emails"`
	Names         []string `yaml:"names"`
}

var defaultNames = []string{
	"Audrey Wai", "John Tan", "Marcus Lee", "Jessie Tang", "Liew Tan En",
	"Ng Su Li", "Soh Lay Hong", "Megane Wong", "Akram", "Kah Wee", "Al",
	"Dloysius", "Nurul Assyakirin Izzati", "Sasha",
}

const DefaultSupportEmail = "nyp_sns@nyp.edu.sg"

func DefaultPolicy() Policy {
	return Policy{
		AllowedEmails: []string{DefaultSupportEmail},
		Names:         append([]string(nil), defaultNames...),
	}
}

// LoadPolicyFile overlays the YAML file at path onto base. Entries are
// appended; duplicates (case-insensitive) are dropped.
func LoadPolicyFile(path string, base Policy) (Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read redaction policy: %w", err)
	}
	var overlay Policy
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return base, fmt.Errorf("parse redaction policy %s: %w", path, err)
	}
	return base.Merge(overlay), nil
}

func (p Policy) Merge(other Policy) Policy {
	return Policy{
		AllowedEmails: mergeUnique(p.AllowedEmails, other.AllowedEmails),
		Names:         mergeUnique(p.Names, other.Names),
	}
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			k := strings.ToLower(s)
			if s == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, s)
		}
	}
	return out
}
