package ratelimit

import "testing"

func TestLimiterConsumesTokens(t *testing.T) {
	l := New()
	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow("k", 3, 0) {
			allowed++
		}
	}
	if allowed != 3 {
		t.Fatalf("allowed = %d, want 3", allowed)
	}
}

func TestLimiterKeysIndependent(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0) {
		t.Fatal("first a should pass")
	}
	if l.Allow("a", 1, 0) {
		t.Fatal("second a should be limited")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatal("b should be unaffected")
	}
}
