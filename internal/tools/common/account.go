package common

import (
	"context"
)

// GetAccountFromArgs extracts the account name from request arguments.
// Defaults to "default" when no account is explicitly provided.
//
// The context parameter is unused today but kept in the signature so
// transport-level identity (e.g. an authenticated user) can be wired in
// without touching every call site.
func GetAccountFromArgs(_ context.Context, args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
