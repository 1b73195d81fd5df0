package ratelimit

import (
	"context"
	"time"

	"portal/internal/configuration"
)

const dayKeyFormat = "20060102"

// ICounter is the shared counter store behind the limiter. Increment must be
// atomic so concurrent issuances for the same phone/day are never lost.
type ICounter interface {
	Increment(ctx context.Context, phone string, day string) (int64, error)
}

// DailyLimiter enforces the per-phone daily SMS quota. The policy is
// append-then-check: the attempt is recorded unconditionally and counts
// toward its own quota evaluation.
type DailyLimiter struct {
	counter ICounter
	now     func() time.Time
}

func NewDailyLimiter(counter ICounter) *DailyLimiter {
	return &DailyLimiter{counter: counter, now: time.Now}
}

// CheckAndRecord records an issuance attempt for the phone number and reports
// whether it is still under quota. Day bucketing uses the UTC calendar date;
// old-day buckets are simply never matched again.
func (l *DailyLimiter) CheckAndRecord(ctx context.Context, phone string) (bool, error) {
	day := l.now().UTC().Format(dayKeyFormat)
	count, err := l.counter.Increment(ctx, phone, day)
	if err != nil {
		return false, err
	}
	return count <= configuration.DailySMSQuota, nil
}
