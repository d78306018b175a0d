// Package common contains constants shared by the vidhub client layers.
package common

const (
	// TokenStorageKey is the metadata key under which the bearer credential is
	// persisted between runs.
	TokenStorageKey = "token"

	// UserIDStorageKey holds the id of the user the stored credential was
	// issued to. It is informational only; the user record itself is always
	// re-fetched from the backend.
	UserIDStorageKey = "user_id"

	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName correlates client log lines with backend logs.
	RequestIDHeaderName = "X-Request-ID"

	// RootRoute is where the client lands after a forced session reset.
	RootRoute = "/"
)
