package charcount

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// CountEach counts each of texts separately with the predicate p,
// running at most inflight counts at a time. The Result at index i
// belongs to texts[i]. Values of inflight below 1 are treated as 1.
//
// If the context is canceled, CountEach stops starting new counts,
// waits for the running ones to finish, then returns the context error
// along with the Results completed so far. Results that were never
// started are nil.
func CountEach(
	ctx context.Context, texts []string, p Predicate, inflight int,
) (results []Result, err error) {
	if inflight < 1 {
		inflight = 1
	}
	results = make([]Result, len(texts))

	sema := semaphore.NewWeighted(int64(inflight))

	for i, text := range texts {
		// Acquire may succeed on a canceled context if a slot is free
		if err = ctx.Err(); err != nil {
			break
		}
		if err = sema.Acquire(ctx, 1); err != nil {
			break
		}

		go func(i int, text string) {
			defer sema.Release(1)
			results[i] = Count(text, p)
		}(i, text)
	}

	// wait for running workers; cannot fail without a deadline
	_ = sema.Acquire(context.Background(), int64(inflight))

	return
}
