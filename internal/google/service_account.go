package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Service-account credentials for headless deployments. Either variable
// selects service-account auth over the user token file:
//
//	GOOGLE_SERVICE_ACCOUNT_JSON - credentials JSON inline
//	GOOGLE_SERVICE_ACCOUNT_FILE - path to a credentials JSON file
//
// The optional GOOGLE_IMPERSONATE_SUBJECT enables domain-wide delegation
// so the service account acts on a user's calendar.

// serviceAccountTokenSource builds a token source from service-account
// credentials. The second return value reports whether service-account auth
// is configured at all; when false the caller falls back to token files.
func serviceAccountTokenSource(ctx context.Context) (oauth2.TokenSource, bool, error) {
	data := []byte(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	if len(data) == 0 {
		file := os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")
		if file == "" {
			return nil, false, nil
		}
		var err error
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, true, fmt.Errorf("failed to read service account file: %w", err)
		}
	}

	conf, err := google.JWTConfigFromJSON(data, CalendarScope)
	if err != nil {
		return nil, true, fmt.Errorf("invalid service account credentials: %w", err)
	}
	if subject := os.Getenv("GOOGLE_IMPERSONATE_SUBJECT"); subject != "" {
		conf.Subject = subject
	}

	return conf.TokenSource(ctx), true, nil
}

// HasServiceAccount reports whether service-account credentials are configured.
func HasServiceAccount() bool {
	return os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON") != "" || os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE") != ""
}
