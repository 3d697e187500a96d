package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// без клиента кэш прозрачно деградирует до прямого вызова fetcher
func TestWithCacheDisabled(t *testing.T) {
	c := NewCache(nil)
	if c.Enabled() {
		t.Fatal("cache with nil client reports enabled")
	}

	calls := 0
	got, err := WithCache(context.Background(), c, "rooms:test", time.Minute, func() (string, error) {
		calls++
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("WithCache error: %v", err)
	}
	if got != "fresh" || calls != 1 {
		t.Fatalf("got %q after %d calls, want \"fresh\" after 1", got, calls)
	}
}

func TestWithCacheFetcherError(t *testing.T) {
	c := NewCache(nil)
	wantErr := errors.New("db down")

	_, err := WithCache(context.Background(), c, "rooms:test", time.Minute, func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("WithCache error = %v, want %v", err, wantErr)
	}
}

func TestInvalidateDisabled(t *testing.T) {
	var c *Cache

	// nil-кэш не должен паниковать
	c.Invalidate(context.Background(), "rooms:*")
	NewCache(nil).Invalidate(context.Background(), "rooms:*")
}

func TestKeys(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{RoomsKey("37.4,126.7,37.7,127.2", "drink:1:20"), "rooms:37.4,126.7,37.7,127.2:drink:1:20"},
		{RoomsKey("37.4,126.7,37.7,127.2", ""), "rooms:37.4,126.7,37.7,127.2"},
		{RoomsPattern(), "rooms:*"},
		{RoomKey("abc"), "room:abc"},
		{MessagesKey("m1", 50, 0), "messages:m1:50:0"},
		{MessagesPattern("m1"), "messages:m1:*"},
		{NotificationsKey("u1"), "notifications:u1"},
		{ProfileKey("u1"), "profile:u1"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("key = %q, want %q", tt.got, tt.want)
		}
	}
}
