package ratelimit

import "testing"

func TestAllowPerKey(t *testing.T) {
	l := NewLimiter(0.001, 2)

	// Burst of 2, then the bucket is dry
	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("burst requests should pass")
	}
	if l.Allow("a") {
		t.Error("third request should be limited")
	}

	// Keys are independent buckets
	if !l.Allow("b") {
		t.Error("fresh key should pass")
	}
}
