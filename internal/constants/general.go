// Package constants centralizes application-wide constant values:
// environment names, header and cookie names, validation bounds, and
// database identifiers. Keeping them here avoids magic strings drifting
// apart across layers.
package constants

// Environment names recognized by the configuration loader.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Context keys for values stored on the request context by middleware.
const (
	UserIDContextKey    = "user_id"
	SessionIDContextKey = "session_id"
	RequestIDContextKey = "request_id"
)

// HTTP header names used across handlers and middleware.
const (
	HeaderContentType         = "Content-Type"
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderXFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy      = "Referrer-Policy"
)

// Header values for security and content negotiation.
const (
	ContentTypeJSON            = "application/json"
	ContentTypeOptionsNoSniff  = "nosniff"
	FrameOptionsDeny           = "DENY"
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"
)

// Session cookie parameters. The cookie carries only the opaque session ID;
// everything else lives server-side in the sessions table.
const (
	SessionCookieName = "homenest_session"
	SessionCookiePath = "/"
)

// MaxRequestBodySize limits JSON request bodies (1 MB).
const MaxRequestBodySize = 1 << 20

// MaxUploadSize limits multipart uploads such as profile images (10 MB).
const MaxUploadSize = 10 << 20

// ProfileImageField is the multipart form field carrying an image file.
const ProfileImageField = "profile_image"

// LogRedactedValue replaces sensitive values in log output.
const LogRedactedValue = "[REDACTED]"
