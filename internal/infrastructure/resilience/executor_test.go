package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) Config {
	return Config{
		RetryMaxAttempts:    attempts,
		RetryInitialBackoff: time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2.0,
		BreakerEnabled:      false,
	}
}

func TestExecuteRetriesRetryableErrors(t *testing.T) {
	executor := NewExecutor(fastRetryConfig(3))

	calls := 0
	err := executor.Execute(context.Background(), "op", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: true, RecordFailure: true}
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestExecuteDoesNotRetryNonRetryable(t *testing.T) {
	executor := NewExecutor(fastRetryConfig(3))

	calls := 0
	err := executor.Execute(context.Background(), "op", func(context.Context) error {
		calls++
		return errors.New("permanent")
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: true}
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected single attempt, got %d", calls)
	}
}

// SingleAttemptPolicy must never add attempts even for retryable failures:
// the online summarizer contract is at most one call per invocation.
func TestSingleAttemptPolicyMakesOneCall(t *testing.T) {
	cfg := SingleAttemptPolicy()
	cfg.BreakerEnabled = false
	executor := NewExecutor(cfg)

	calls := 0
	err := executor.Execute(context.Background(), "llm.summarize", func(context.Context) error {
		calls++
		return errors.New("upstream 503")
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: true, RecordFailure: true}
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls)
	}
}

func TestBreakerOpensAfterFailureRatio(t *testing.T) {
	cfg := fastRetryConfig(1)
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 3
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	cfg.BreakerHalfOpenMaxCalls = 1
	executor := NewExecutor(cfg)

	classifier := func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: true}
	}

	for i := 0; i < 3; i++ {
		_ = executor.Execute(context.Background(), "op", func(context.Context) error {
			return errors.New("down")
		}, classifier)
	}

	err := executor.Execute(context.Background(), "op", func(context.Context) error {
		return nil
	}, classifier)
	if !IsCircuitOpen(err) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}

func TestExecuteStopsOnContextCancellation(t *testing.T) {
	executor := NewExecutor(fastRetryConfig(10))

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := executor.Execute(ctx, "op", func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: true, RecordFailure: true}
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected no retries after cancellation, got %d", calls)
	}
}
