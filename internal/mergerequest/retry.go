package mergerequest

import "context"

// RetryPolicy re-runs an operation after it fails. Retries is the number of
// extra attempts; zero disables retrying.
type RetryPolicy struct {
	Retries int
}

// DefaultCommitRetry absorbs a single commit failure, which typically comes
// from a pre-commit hook that rewrote files and needs them staged again.
var DefaultCommitRetry = RetryPolicy{Retries: 1}

// Do runs op until it succeeds, the retries are exhausted, or ctx is done.
// It returns the last error from op.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= max(p.Retries, 0); attempt++ {
		if attempt > 0 {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return err
			}
		}
		if err = op(ctx); err == nil {
			return nil
		}
	}
	return err
}
