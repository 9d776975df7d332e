package app

import (
	"context"
	"fmt"

	"github.com/yungbote/sns-consult-backend/internal/modules/corpus"
	"github.com/yungbote/sns-consult-backend/internal/modules/redact"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

// loadCorpus reads and redacts the knowledge base once, before the server
// accepts traffic.
func loadCorpus(ctx context.Context, log *logger.Logger, cfg Config) (string, error) {
	policy := redact.DefaultPolicy()
	if cfg.RedactionPolicyFile != "" {
		p, err := redact.LoadPolicyFile(cfg.RedactionPolicyFile, policy)
		if err != nil {
			return "", err
		}
		policy = p
	}
	policy = policy.Merge(redact.Policy{AllowedEmails: []string{cfg.SupportEmail}})

	raw, err := corpus.NewLoader(log).Load(ctx, cfg.CorpusDir)
	if err != nil {
		return "", fmt.Errorf("load corpus: %w", err)
	}
	redacted := redact.New(policy).Redact(raw)
	log.Info("Corpus redacted", "names", len(policy.Names), "allowed_emails", len(policy.AllowedEmails), "chars", len(redacted))
	return redacted, nil
}
