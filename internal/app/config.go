package app

import (
	"github.com/yungbote/sns-consult-backend/internal/modules/redact"
	"github.com/yungbote/sns-consult-backend/internal/platform/envutil"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

type Config struct {
	Port                string
	Environment         string
	Version             string
	CorpusDir           string
	SupportEmail        string
	RedactionPolicyFile string
	UploadDir           string
	MaxUploadBytes      int64
	CORSOrigins         []string
}

func LoadConfig(log *logger.Logger) Config {
	corpusDir := envutil.String("CORPUS_DIR", "")
	if corpusDir == "" {
		corpusDir = envutil.String("PADLET_CONTENT", "content")
	}
	maxMB := envutil.Int("MAX_UPLOAD_MB", 25)
	if maxMB <= 0 {
		log.Warn("MAX_UPLOAD_MB must be positive, using default", "value", maxMB)
		maxMB = 25
	}
	cfg := Config{
		Port:                envutil.String("PORT", "3000"),
		Environment:         envutil.String("APP_ENV", "development"),
		Version:             envutil.String("APP_VERSION", "dev"),
		CorpusDir:           corpusDir,
		SupportEmail:        envutil.String("SUPPORT_EMAIL", redact.DefaultSupportEmail),
		RedactionPolicyFile: envutil.String("REDACTION_POLICY_FILE", ""),
		UploadDir:           envutil.String("UPLOAD_DIR", "data/uploads"),
		MaxUploadBytes:      int64(maxMB) << 20,
		CORSOrigins:         envutil.List("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
	log.Info("Config loaded",
		"port", cfg.Port,
		"env", cfg.Environment,
		"corpus_dir", cfg.CorpusDir,
		"upload_dir", cfg.UploadDir,
		"max_upload_mb", maxMB,
		"cors_origins", cfg.CORSOrigins,
	)
	return cfg
}
