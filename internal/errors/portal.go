package apierrors

// HTTP 400 Bad Request.
const (
	ErrBadRequest = "BAD_REQUEST"
)

// HTTP 401 Unauthorized.
const (
	ErrIdentityMismatch = "IDENTITY_MISMATCH"
	ErrWrongCode        = "WRONG_CODE"
)

// HTTP 403 Forbidden.
const (
	ErrForbidden       = "FORBIDDEN"
	ErrChallengeLocked = "CHALLENGE_LOCKED"
)

// HTTP 409 Conflict.
const (
	ErrNoPendingChallenge = "NO_PENDING_CHALLENGE"
)

// HTTP 410 Gone.
const (
	ErrChallengeExpired = "CHALLENGE_EXPIRED"
)

// HTTP 429 Too Many Requests.
const (
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// HTTP 5xx.
const (
	ErrInternalServerError  = "INTERNAL_SERVER_ERROR"
	ErrServiceUnavailable   = "SERVICE_UNAVAILABLE"
	ErrDirectoryUnavailable = "DIRECTORY_UNAVAILABLE"
	ErrRecordLookupFailed   = "RECORD_LOOKUP_FAILED"
	ErrSMSDispatchFailed    = "SMS_DISPATCH_FAILED"
	ErrVPNUnreachable       = "VPN_UNREACHABLE"
)
