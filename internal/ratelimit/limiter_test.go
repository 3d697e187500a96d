package ratelimit

import (
	"testing"
	"time"
)

func TestAllowWithinLimit(t *testing.T) {
	l := NewLimiter()

	for i := 0; i < 5; i++ {
		if !l.Allow("user-1", 5, time.Minute) {
			t.Fatalf("call %d rejected, want allowed", i+1)
		}
	}

	// (N+1)-й вызов в том же окне
	if l.Allow("user-1", 5, time.Minute) {
		t.Fatal("6th call allowed, want rejected")
	}
}

func TestWindowReset(t *testing.T) {
	now := time.Now()
	l := NewLimiter()
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !l.Allow("user-1", 3, time.Minute) {
			t.Fatalf("call %d rejected, want allowed", i+1)
		}
	}
	if l.Allow("user-1", 3, time.Minute) {
		t.Fatal("over-limit call allowed")
	}

	// окно истекло: первый же вызов открывает новое со счётчиком 1
	now = now.Add(time.Minute + time.Millisecond)
	if !l.Allow("user-1", 3, time.Minute) {
		t.Fatal("first call after window rejected, want allowed")
	}
	if got := l.Remaining("user-1", 3); got != 2 {
		t.Fatalf("Remaining after reset = %d, want 2", got)
	}
}

func TestIdentifiersAreIndependent(t *testing.T) {
	l := NewLimiter()

	if !l.Allow("user-1", 1, time.Minute) {
		t.Fatal("first call for user-1 rejected")
	}
	if l.Allow("user-1", 1, time.Minute) {
		t.Fatal("second call for user-1 allowed")
	}
	if !l.Allow("user-2", 1, time.Minute) {
		t.Fatal("user-2 affected by user-1's window")
	}
}

func TestPurgeExpiredWindows(t *testing.T) {
	now := time.Now()
	l := NewLimiter()
	l.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		l.Allow(string(rune('a'+i)), 5, time.Minute)
	}
	now = now.Add(2 * time.Minute)

	// добиваем счётчик до порога чистки
	l.callsUntilPurge = 1
	l.Allow("fresh", 5, time.Minute)

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.windows) != 1 {
		t.Fatalf("windows after purge = %d, want 1", len(l.windows))
	}
}

func TestReset(t *testing.T) {
	l := NewLimiter()

	l.Allow("user-1", 1, time.Minute)
	if l.Allow("user-1", 1, time.Minute) {
		t.Fatal("over-limit call allowed")
	}

	l.Reset("user-1")
	if !l.Allow("user-1", 1, time.Minute) {
		t.Fatal("call after Reset rejected")
	}
}
