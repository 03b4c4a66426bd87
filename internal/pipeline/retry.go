package pipeline

import (
	"context"
	"log"

	"tripgenie/internal/schema"
)

// Outcome records how a stage execution ended, surfaced in run metadata.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFallback  Outcome = "fallback"
	OutcomeExhausted Outcome = "exhausted"
)

// RetryPolicy bounds re-prompting of generative stages whose output fails
// schema validation.
type RetryPolicy struct {
	MaxAttempts int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3}
}

// Execute runs a generative stage up to MaxAttempts times. Each attempt
// starts from the original input context — no partial output from a failed
// attempt leaks into the next one — with only the previous validation error
// attached as re-prompt feedback. When the budget is spent, a stage that can
// fall back deterministically does so; otherwise the run fails.
func (p RetryPolicy) Execute(ctx context.Context, st Stage, in Context) (Context, int, Outcome, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempts := 0
	var lastErr error

	for attempts < maxAttempts {
		attempts++

		attempt := in
		if lastErr != nil {
			attempt.RetryFeedback = lastErr.Error()
		}

		out, err := st.Run(ctx, attempt)
		if err != nil {
			if ctx.Err() != nil {
				return in, attempts, OutcomeExhausted, err
			}
			log.Printf("Stage %s attempt %d/%d failed: %v", st.Name(), attempts, maxAttempts, err)
			lastErr = err
			continue
		}
		out.RetryFeedback = ""

		if serr := schema.Validate(st.Name(), out.Payload(), st.OutputSchema()); serr != nil {
			log.Printf("Stage %s attempt %d/%d produced invalid output: %v", st.Name(), attempts, maxAttempts, serr)
			lastErr = serr
			continue
		}

		return out, attempts, OutcomeSucceeded, nil
	}

	if fb, ok := st.(Fallbacker); ok {
		out, err := fb.Fallback(ctx, in)
		if err == nil {
			out.Degraded = append(out.Degraded, st.Name()+": deterministic fallback used")
			log.Printf("Stage %s exhausted %d attempts, deterministic fallback used", st.Name(), attempts)
			return out, attempts, OutcomeFallback, nil
		}
		log.Printf("Stage %s fallback failed: %v", st.Name(), err)
	}

	return in, attempts, OutcomeExhausted, NewError(st.Name(), FailureGenerationFailed,
		"exhausted %d attempts: %v", attempts, lastErr)
}
