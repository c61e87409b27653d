package google

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"valid default", "default", false},
		{"valid work", "work", false},
		{"valid with hyphen", "work-email", false},
		{"valid with underscore", "personal_email", false},
		{"valid alphanumeric", "account123", false},
		{"empty", "", true},
		{"with spaces", "my account", true},
		{"with special chars", "account@work", true},
		{"with slash", "work/personal", true},
		{"with dot", "work.email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccountName(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccountName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenFileForAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account", "default", "google.token"},
		{"empty falls back to default", "", "google.token"},
		{"work account", "work", "google.work.token"},
		{"personal account", "personal", "google.personal.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenFileForAccount(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("tokenFileForAccount() = %v, want base %v", got, tt.want)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "")

	// Test with invalid account name
	if HasTokenForAccount("invalid account") {
		t.Error("HasTokenForAccount() should return false for invalid account name")
	}

	// Test with empty account name
	if HasTokenForAccount("") {
		t.Error("HasTokenForAccount() should return false for empty account name")
	}

	// Note: We can't easily test with actual token files without mocking,
	// but we've validated the account name validation logic
}

func TestHasTokenForAccount_ServiceAccount(t *testing.T) {
	// Service-account credentials satisfy the token check for every account,
	// even when no token file exists on disk.
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", "")

	if !HasTokenForAccount("default") {
		t.Error("HasTokenForAccount() should be true when service-account credentials are configured")
	}
	if !HasTokenForAccount("work") {
		t.Error("HasTokenForAccount() should be true for any account with service-account credentials")
	}
	if !HasToken() {
		t.Error("HasToken() should be true when service-account credentials are configured")
	}
}

func TestGetAuthenticationErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		account string
	}{
		{"default account", "default"},
		{"work account", "work"},
		{"personal account", "personal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GetAuthenticationErrorMessage(tt.account)
			if msg == "" {
				t.Error("GetAuthenticationErrorMessage() should return non-empty message")
			}
			// Check that message mentions the account
			if !strings.Contains(msg, tt.account) {
				t.Errorf("GetAuthenticationErrorMessage() should mention account %s", tt.account)
			}
			// Check that message mentions OAuth
			if !strings.Contains(msg, "OAuth") {
				t.Error("GetAuthenticationErrorMessage() should mention OAuth")
			}
		})
	}
}

func TestDefaultAccountFunctions(t *testing.T) {
	// Test that legacy functions use default account
	defaultResult := HasTokenForAccount("default")
	legacyResult := HasToken()
	if defaultResult != legacyResult {
		t.Error("HasToken() should return same result as HasTokenForAccount('default')")
	}
}

func TestHasServiceAccount_UnsetEnv(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "")

	if HasServiceAccount() {
		t.Error("HasServiceAccount() should be false without credentials configured")
	}
}

func TestHasServiceAccount_SetEnv(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "/tmp/sa.json")

	if !HasServiceAccount() {
		t.Error("HasServiceAccount() should be true when GOOGLE_SERVICE_ACCOUNT_FILE is set")
	}
}
