package configuration

import "time"

const AppName = "vpnportal"

// JWT audience for the token linking phase 1 (issuance) to phase 2
// (verification) of a conversation.
const AudienceChallenge = "portal:challenge"

// Challenge lifecycle.
const (
	// ChallengeValidity is the fixed window during which a submitted code is
	// accepted, measured from issuance.
	ChallengeValidity = 120 * time.Second
	// ChallengeCodeMin and ChallengeCodeMax bound the generated numeric code.
	ChallengeCodeMin = 100000
	ChallengeCodeMax = 999999
	// ChallengeMaxFailedAttempts caps consecutive wrong-code submissions
	// before the pending challenge is destroyed.
	ChallengeMaxFailedAttempts = 3
	// ChallengeTokenExpiryMinutes bounds the conversation token. Longer than
	// the code validity so an expired code still routes back to the intent's
	// entry point.
	ChallengeTokenExpiryMinutes = 15
)

// DailySMSQuota is the maximum number of SMS issuances per phone number per
// UTC calendar day.
const DailySMSQuota = 5

const (
	CacheSMSCountKey     = "sms:count:%s:%s"
	CacheConversationKey = "conversation:%s"
	// CacheSMSCountTTL garbage-collects old-day counters. Correctness comes
	// from the day-bucketed key, not the TTL.
	CacheSMSCountTTL = 48 * time.Hour
	ConversationTTL  = 15 * time.Minute
)

// Entry points the caller is redirected to when a conversation has to be
// restarted, matched to the stored intent.
const (
	RedirectUnlock = "/unlock"
	RedirectReset  = "/reset"
)

var ArrayConfigFields = []string{
	"app.allowed_origins",
	"cache.redis.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
