package audit

// Audited actions, one per workflow transition.
const (
	IdentityVerified  = "identity_verified"
	RateLimitHit      = "rate_limit_hit"
	ChallengeIssued   = "challenge_issued"
	ChallengeVerified = "challenge_verified"
	ChallengeExpired  = "challenge_expired"
	ActionDispatched  = "action_dispatched"
	UpstreamFailure   = "upstream_failure"
)

// Outcome values.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAIL"
)
