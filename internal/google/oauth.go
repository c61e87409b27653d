package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// cacheAppDir is the directory under the user cache dir that holds token files.
const cacheAppDir = "scheduler-mcp"

// HasToken checks if a valid OAuth token exists for the default account.
func HasToken() bool {
	return HasTokenForAccount("default")
}

// HasTokenForAccount checks whether credentials are available for the given
// account: service-account credentials from the environment, or a stored
// token file. Service-account credentials satisfy every account, matching
// the precedence in GetTokenSourceForAccount.
func HasTokenForAccount(account string) bool {
	if HasServiceAccount() {
		return true
	}
	if validateAccountName(account) != nil {
		return false
	}
	_, err := os.ReadFile(tokenFileForAccount(account))
	return err == nil
}

// GetAuthURL returns the OAuth URL for user authorization.
func GetAuthURL() string {
	conf := getOAuthConfig()
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// SaveToken exchanges an authorization code for tokens and saves them
// under the given account name.
func SaveToken(ctx context.Context, account, authCode string) error {
	conf := getOAuthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	tokenFile := tokenFileForAccount(account)
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile, []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// getOAuthConfig returns the OAuth2 configuration for calendar access.
// Client credentials come from the environment so no secrets live in the binary.
func getOAuthConfig() *oauth2.Config {
	const OOB = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  OOB,
		Scopes:       DefaultOAuthScopes,
	}
}

// GetTokenSourceForAccount returns an OAuth2 token source for the stored
// token of the given account. Service-account credentials, when configured,
// take precedence over user token files.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	if ts, ok, err := serviceAccountTokenSource(ctx); ok {
		return ts, err
	}

	conf := getOAuthConfig()

	slurp, err := os.ReadFile(tokenFileForAccount(account))
	if err != nil {
		return nil, fmt.Errorf("no Google OAuth token found for account %q", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format for account %q", account)
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	// Validate the token
	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token for account %q is invalid: %w", account, err)
	}

	return ts, nil
}

// GetHTTPClientForAccount returns an HTTP client configured with OAuth2
// authentication for the given account. The client is configured to use
// HTTP/1.1 to avoid HTTP/2 protocol errors against Google endpoints.
func GetHTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client, nil
}

// validateAccountName rejects account names that could escape the cache
// directory or collide with other files. Letters, digits, hyphen and
// underscore only.
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name must not be empty")
	}
	for _, r := range account {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return fmt.Errorf("invalid account name %q: only letters, digits, '-' and '_' are allowed", account)
		}
	}
	return nil
}

// GetAuthenticationErrorMessage returns a user-facing message explaining how
// to authenticate the given account. Surfaced through tool results when no
// token is available.
func GetAuthenticationErrorMessage(account string) string {
	return fmt.Sprintf("No Google OAuth token found for account %q. "+
		"Run 'scheduler-mcp auth' to authorize calendar access for this account, "+
		"or configure service-account credentials via GOOGLE_SERVICE_ACCOUNT_JSON.", account)
}

// tokenFileForAccount maps an account name to its token file path.
// The default account keeps the legacy file name for compatibility.
func tokenFileForAccount(account string) string {
	name := "google.token"
	if account != "" && account != "default" {
		name = "google." + account + ".token"
	}
	return filepath.Join(userCacheDir(), cacheAppDir, name)
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
