package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JamesExley95/sleeper-player-database/internal/domain/players"
	"github.com/JamesExley95/sleeper-player-database/internal/metrics"
)

// flakyProvider fails a set number of times before succeeding.
type flakyProvider struct {
	failures int
	err      error
	calls    int
	items    []players.Player
}

func (f *flakyProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return f.items, nil
}

func TestRetryingProviderSucceedsAfterRetry(t *testing.T) {
	inner := &flakyProvider{
		failures: 2,
		err:      errors.New("transient"),
		items:    []players.Player{{ID: "4046", Name: "Patrick Mahomes"}},
	}
	recorder := metrics.NewRecorder()
	provider := NewRetryingProvider(inner, "sleeper", nil, recorder, 3, time.Millisecond)

	items, err := provider.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("FetchPlayers: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
	if got := recorder.ProviderCalls("sleeper"); got != 3 {
		t.Errorf("recorded calls = %d, want 3", got)
	}
	if got := recorder.ProviderErrors("sleeper"); got != 2 {
		t.Errorf("recorded errors = %d, want 2", got)
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: errors.New("down")}
	provider := NewRetryingProvider(inner, "sleeper", nil, nil, 3, time.Millisecond)

	if _, err := provider.FetchPlayers(context.Background()); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}

func TestRetryingProviderRetriesShortRateLimit(t *testing.T) {
	inner := &flakyProvider{
		failures: 1,
		err:      &RateLimitError{Provider: "sleeper", StatusCode: 429, RetryAfter: 5 * time.Millisecond},
		items:    []players.Player{{ID: "4046", Name: "Patrick Mahomes"}},
	}
	recorder := metrics.NewRecorder()
	provider := NewRetryingProvider(inner, "sleeper", nil, recorder, 3, time.Millisecond)

	if _, err := provider.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("FetchPlayers: %v", err)
	}
	if got := recorder.RateLimitHits("sleeper"); got != 1 {
		t.Errorf("rate limit hits = %d, want 1", got)
	}
}

func TestRetryingProviderGivesUpOnLongRateLimit(t *testing.T) {
	inner := &flakyProvider{
		failures: 10,
		err:      &RateLimitError{Provider: "sleeper", StatusCode: 429, RetryAfter: time.Hour},
	}
	provider := NewRetryingProvider(inner, "sleeper", nil, nil, 5, time.Millisecond)

	_, err := provider.FetchPlayers(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1 (no retry when told to wait an hour)", inner.calls)
	}
	if _, ok := AsRateLimitError(err); !ok {
		t.Errorf("error should stay identifiable as a rate limit: %v", err)
	}
}

func TestRetryingProviderHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{failures: 10, err: errors.New("down")}
	provider := NewRetryingProvider(inner, "sleeper", nil, nil, 5, time.Second)

	if _, err := provider.FetchPlayers(ctx); err == nil {
		t.Fatal("expected error with cancelled context")
	}
	if inner.calls > 1 {
		t.Errorf("inner calls = %d, want at most 1 after cancellation", inner.calls)
	}
}
