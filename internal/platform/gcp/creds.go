package gcp

import (
	"os"
	"strings"

	"google.golang.org/api/option"
)

// Credential sources, most specific first. The ARTIFACT_ variants let the
// minutes bucket use a different service account than the rest of the host.
var credentialEnv = []string{
	"ARTIFACT_GCS_CREDENTIALS_JSON",
	"ARTIFACT_GCS_CREDENTIALS_FILE",
	"GOOGLE_APPLICATION_CREDENTIALS_JSON",
	"GOOGLE_APPLICATION_CREDENTIALS",
}

// ClientOptionsFromEnv returns nil when nothing is set, which means
// application default credentials.
func ClientOptionsFromEnv() []option.ClientOption {
	for _, name := range credentialEnv {
		if opts := credentialOptions(os.Getenv(name)); opts != nil {
			return opts
		}
	}
	return nil
}

// credentialOptions treats a value starting with "{" as inline JSON and
// anything else as a file path.
func credentialOptions(raw string) []option.ClientOption {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return nil
	case strings.HasPrefix(v, "{"):
		return []option.ClientOption{option.WithCredentialsJSON([]byte(v))}
	default:
		return []option.ClientOption{option.WithCredentialsFile(v)}
	}
}
