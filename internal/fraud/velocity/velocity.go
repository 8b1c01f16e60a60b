// Package velocity counts recent payments per account over a sliding window.
package velocity

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Window records an event for key and returns how many events, including
// this one, fall inside the window ending at at.
type Window interface {
	Record(ctx context.Context, key, id string, at time.Time) (int, error)
}

type MemoryWindow struct {
	size time.Duration

	mu        sync.Mutex
	events    map[string]map[string]time.Time
	lastSweep time.Time
}

func NewMemoryWindow(size time.Duration) *MemoryWindow {
	return &MemoryWindow{size: size, events: make(map[string]map[string]time.Time)}
}

func (w *MemoryWindow) Record(_ context.Context, key, id string, at time.Time) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := at.Add(-w.size)
	if at.Sub(w.lastSweep) >= w.size {
		w.sweep(cutoff)
		w.lastSweep = at
	}

	bucket, ok := w.events[key]
	if !ok {
		bucket = make(map[string]time.Time)
		w.events[key] = bucket
	}
	bucket[id] = at
	prune(bucket, cutoff)
	return len(bucket), nil
}

// sweep prunes every key and drops the ones left empty. It runs at most once
// per window length.
func (w *MemoryWindow) sweep(cutoff time.Time) {
	for key, bucket := range w.events {
		prune(bucket, cutoff)
		if len(bucket) == 0 {
			delete(w.events, key)
		}
	}
}

func prune(bucket map[string]time.Time, cutoff time.Time) {
	for id, t := range bucket {
		if !t.After(cutoff) {
			delete(bucket, id)
		}
	}
}

// RedisWindow keeps one sorted set per key scored by unix milliseconds.
// When Redis is unreachable it falls back to an in-process window.
type RedisWindow struct {
	rdb      *redis.Client
	size     time.Duration
	prefix   string
	fallback *MemoryWindow
}

func NewRedisWindow(rdb *redis.Client, size time.Duration) *RedisWindow {
	return &RedisWindow{
		rdb:      rdb,
		size:     size,
		prefix:   "fraud:velocity:",
		fallback: NewMemoryWindow(size),
	}
}

func (w *RedisWindow) Record(ctx context.Context, key, id string, at time.Time) (int, error) {
	n, err := w.record(ctx, key, id, at)
	if err != nil {
		logrus.WithField("key", key).Warnf("redis velocity window unavailable, using memory: %v", err)
		return w.fallback.Record(ctx, key, id, at)
	}
	return n, nil
}

func (w *RedisWindow) record(ctx context.Context, key, id string, at time.Time) (int, error) {
	k := w.prefix + key
	now := at.UnixMilli()
	cutoff := at.Add(-w.size).UnixMilli()

	pipe := w.rdb.TxPipeline()
	pipe.ZAdd(ctx, k, redis.Z{Score: float64(now), Member: id})
	pipe.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(cutoff, 10))
	card := pipe.ZCard(ctx, k)
	pipe.Expire(ctx, k, w.size)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("velocity pipeline: %w", err)
	}
	return int(card.Val()), nil
}
