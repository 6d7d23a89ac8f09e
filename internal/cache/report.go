// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// report.go provides a Valkey-backed cache for computed accessibility
// reports. The contrast battery is cheap but the report endpoint is hit on
// every editor keystroke in the color panel, so results are cached per
// brand and invalidated on brand change events.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/accessibility"
)

const (
	// reportKeyPrefix is the Valkey key prefix for cached reports.
	reportKeyPrefix = "a11y:"

	// DefaultReportTTL bounds staleness even without invalidation events.
	DefaultReportTTL = 10 * time.Minute
)

// ReportCache manages accessibility report caching in Valkey.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache backed by the given Valkey client.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl == 0 {
		ttl = DefaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get retrieves the cached report for a brand. Returns nil on miss or on
// any cache error; the caller recomputes in both cases.
func (rc *ReportCache) Get(ctx context.Context, brandID uuid.UUID) *accessibility.Report {
	val, err := rc.client.Get(ctx, reportKeyPrefix+brandID.String()).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("report cache get error", "brand", brandID, "error", err)
		return nil
	}

	var report accessibility.Report
	if err := json.Unmarshal(val, &report); err != nil {
		slog.Warn("report cache decode error", "brand", brandID, "error", err)
		return nil
	}
	return &report
}

// Set stores a computed report for a brand with the configured TTL.
func (rc *ReportCache) Set(ctx context.Context, brandID uuid.UUID, report *accessibility.Report) {
	val, err := json.Marshal(report)
	if err != nil {
		slog.Warn("report cache encode error", "brand", brandID, "error", err)
		return
	}
	if err := rc.client.Set(ctx, reportKeyPrefix+brandID.String(), val, rc.ttl).Err(); err != nil {
		slog.Warn("report cache set error", "brand", brandID, "error", err)
	}
}

// Invalidate removes the cached report for a brand.
func (rc *ReportCache) Invalidate(ctx context.Context, brandID uuid.UUID) {
	if err := rc.client.Del(ctx, reportKeyPrefix+brandID.String()).Err(); err != nil {
		slog.Warn("report cache invalidate error", "brand", brandID, "error", err)
	}
}
