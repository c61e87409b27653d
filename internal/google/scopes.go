package google

// DefaultOAuthScopes are the Google OAuth scopes required for scheduling
// functionality. The calendar scope covers free/busy queries, event search
// and event creation; the OpenID scopes provide user identity for audit logs.
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar scope
	"https://www.googleapis.com/auth/calendar",
}

// CalendarScope is the single scope needed for calendar gateway operations.
const CalendarScope = "https://www.googleapis.com/auth/calendar"
