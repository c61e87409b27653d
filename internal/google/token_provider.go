package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider supplies OAuth tokens for Google Calendar access. The seam
// lets the calendar client run against the real credential chain or a test
// double without knowing which is behind it.
type TokenProvider interface {
	// GetTokenForAccount returns a token authorizing calendar access for
	// the given account.
	GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error)

	// HasTokenForAccount reports whether credentials are available for
	// the given account.
	HasTokenForAccount(account string) bool
}

// FileTokenProvider resolves tokens through the standard credential chain:
// service-account credentials from the environment when configured,
// otherwise the on-disk token cache written by the auth command.
type FileTokenProvider struct{}

// NewFileTokenProvider creates a provider backed by the credential chain.
func NewFileTokenProvider() *FileTokenProvider {
	return &FileTokenProvider{}
}

// GetTokenForAccount mints a token for the given account.
func (p *FileTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to mint token for account %q: %w", account, err)
	}

	return token, nil
}

// HasTokenForAccount reports whether the credential chain can serve the account.
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	return HasTokenForAccount(account)
}
