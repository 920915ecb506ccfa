// Package common contains shared constants and small helpers used across
// SkillSwap client components.
package common

const (
	// AuthTokenKey is the persisted-storage key holding the credential token.
	AuthTokenKey = "auth_token"

	// UserDataKey is the persisted-storage key holding the serialized
	// profile of the current user.
	UserDataKey = "user_data"

	// DemoToken is the reserved token value persisted for demo sessions.
	// It is a local marker only and must never be sent to the backend.
	DemoToken = "demo-token"

	// RequestIDHeader carries a per-request correlation id on outbound calls.
	RequestIDHeader = "X-Request-Id"
)
