package redis

import (
	"context"
	"testing"
	"time"
)

func TestBidGroupKey_TrimsAndKeepsCase(t *testing.T) {
	t.Parallel()

	if got := bidGroupKey("  OLI ", 5); got != "bidgroup:OLI:5" {
		t.Fatalf("unexpected key: %q", got)
	}
	if bidGroupKey("OLI", 5) == bidGroupKey("oli", 5) {
		t.Fatal("keys for ids differing by case must differ")
	}
	if bidGroupKey("oli", 3) == bidGroupKey("oli", 5) {
		t.Fatal("keys for different line counts must differ")
	}
}

func TestSet_NonPositiveTTLIsNoop(t *testing.T) {
	t.Parallel()

	// A nil client would panic if Set reached redis.
	cache := NewBidGroupCache(nil)
	if err := cache.Set(context.Background(), "oli", 5, nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(context.Background(), "oli", 5, nil, -time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
