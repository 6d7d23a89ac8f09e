// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/accessibility"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "a11y:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestReportCacheRoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewReportCache(client, time.Minute)
	ctx := context.Background()
	brandID := uuid.New()

	if got := rc.Get(ctx, brandID); got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}

	report := &accessibility.Report{Score: 87, Band: "Gut"}
	rc.Set(ctx, brandID, report)

	got := rc.Get(ctx, brandID)
	if got == nil {
		t.Fatal("expected hit after Set")
	}
	if got.Score != 87 || got.Band != "Gut" {
		t.Errorf("report round-trip = %+v", got)
	}

	rc.Invalidate(ctx, brandID)
	if got := rc.Get(ctx, brandID); got != nil {
		t.Errorf("expected miss after Invalidate, got %+v", got)
	}
}

func TestEventsPublishSubscribe(t *testing.T) {
	client := testValkeyClient(t)
	events := NewEvents(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		mu       sync.Mutex
		received []BrandEvent
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		events.Subscribe(ctx, func(e BrandEvent) {
			mu.Lock()
			received = append(received, e)
			mu.Unlock()
		})
	}()

	// Give the subscriber a moment to attach before publishing.
	time.Sleep(200 * time.Millisecond)

	brandID := uuid.New()
	events.Publish(ctx, brandID, ActionUpdated)

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		n := len(received)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no event received")
		case <-time.After(50 * time.Millisecond):
		}
	}

	mu.Lock()
	got := received[0]
	mu.Unlock()
	if got.BrandID != brandID || got.Action != ActionUpdated {
		t.Errorf("event = %+v", got)
	}

	cancel()
	<-done
}
