package apierrors

// APIError is the terminal outcome of a failed step: an HTTP status, a
// machine-readable code, and optionally the entry point the caller should be
// redirected to.
type APIError struct {
	Status   int
	Code     string
	Redirect string
}

func (e APIError) Error() string {
	return e.Code
}

func NewAPIError(status int, code string) APIError {
	return APIError{Status: status, Code: code}
}

// NewRedirectError builds an APIError instructing the caller to re-enter the
// flow at the given entry point.
func NewRedirectError(status int, code string, redirect string) APIError {
	return APIError{Status: status, Code: code, Redirect: redirect}
}

// userMessages maps error codes to the human-readable text surfaced to the end
// user. Codes without an entry fall back to a generic message. Identity
// failures never distinguish a bad username from a bad phone number.
var userMessages = map[string]string{
	ErrIdentityMismatch:   "Username or phone number is incorrect. Try again.",
	ErrRateLimitExceeded:  "You cannot request more than 5 SMS codes per day. Please contact support.",
	ErrSMSDispatchFailed:  "SMS code sending failed, try again later.",
	ErrWrongCode:          "Wrong SMS code.",
	ErrChallengeLocked:    "Too many wrong codes. Request a new SMS code.",
	ErrChallengeExpired:   "The SMS code is no longer valid.",
	ErrNoPendingChallenge: "No code is pending for this session. Start over.",
	ErrVPNUnreachable:     "The VPN system could not be reached. Contact your administrator.",
}

// MessageFor returns the user-facing message for a code.
func MessageFor(code string) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return "The request could not be completed."
}
