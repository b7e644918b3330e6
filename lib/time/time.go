package time

import (
	"context"
	"time"

	"oss.terrastruct.com/seqdiag/lib/env"
)

// WithTimeout returns context.WithTimeout(ctx, timeout) but timeout is overridden with
// SEQDIAG_TIMEOUT if set. A non-positive timeout disables the deadline.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	t := timeout
	if seconds, has := env.Timeout(); has {
		t = time.Duration(seconds) * time.Second
	}
	if t <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, t)
}
