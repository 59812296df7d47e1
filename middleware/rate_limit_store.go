package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ── Redis sorted-set window ──────────────────────────────────────────────────
// One ZSET per key, scored by request time in milliseconds.

type RedisWindowStore struct {
	client *redis.Client
}

func NewRedisWindowStore(client *redis.Client) *RedisWindowStore {
	return &RedisWindowStore{client: client}
}

func (s *RedisWindowStore) Hit(ctx context.Context, key string, now time.Time, window time.Duration, max int) (int, time.Time, error) {
	nowMs := now.UnixMilli()
	member := strconv.FormatInt(nowMs, 10) + "-" + uuid.NewString()
	floor := strconv.FormatInt(nowMs-window.Milliseconds(), 10)

	var card *redis.IntCmd
	var first *redis.ZSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "-inf", "("+floor)
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
		card = pipe.ZCard(ctx, key)
		first = pipe.ZRangeWithScores(ctx, key, 0, 0)
		pipe.PExpire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	count := int(card.Val())
	oldest := now
	if zs := first.Val(); len(zs) > 0 {
		oldest = time.UnixMilli(int64(zs[0].Score))
	}
	if count > max {
		if err := s.client.ZRem(ctx, key, member).Err(); err != nil {
			return 0, time.Time{}, err
		}
	}
	return count, oldest, nil
}

// ── In-process window, used when REDIS_URL is unset ─────────────────────────

type MemoryWindowStore struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	lastSweep time.Time
}

func NewMemoryWindowStore() *MemoryWindowStore {
	return &MemoryWindowStore{hits: make(map[string][]time.Time)}
}

func (s *MemoryWindowStore) Hit(_ context.Context, key string, now time.Time, window time.Duration, max int) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	floor := now.Add(-window)
	if now.Sub(s.lastSweep) >= window {
		s.sweep(floor)
		s.lastSweep = now
	}

	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if !t.Before(floor) {
			kept = append(kept, t)
		}
	}

	count := len(kept) + 1
	if count <= max {
		kept = append(kept, now)
	}
	if len(kept) == 0 {
		delete(s.hits, key)
	} else {
		s.hits[key] = kept
	}

	oldest := now
	if len(kept) > 0 {
		oldest = kept[0]
	}
	return count, oldest, nil
}

// sweep drops keys whose newest hit is older than floor. Hits are appended in
// time order, so the last one is the newest.
func (s *MemoryWindowStore) sweep(floor time.Time) {
	for key, hits := range s.hits {
		if len(hits) == 0 || hits[len(hits)-1].Before(floor) {
			delete(s.hits, key)
		}
	}
}

func (s *MemoryWindowStore) keys() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hits)
}
