package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// QuotaRepo tracks per-user daily request consumption in redis. The day
// key expires at the next local midnight, so stale records clean up on
// their own instead of being overwritten.
type QuotaRepo struct {
	client *goredis.Client
	limit  int
	now    func() time.Time
}

func NewQuotaRepo(client *goredis.Client, limit int) *QuotaRepo {
	if limit <= 0 {
		limit = 1
	}
	return &QuotaRepo{
		client: client,
		limit:  limit,
		now:    time.Now,
	}
}

func (r *QuotaRepo) MayConsume(ctx context.Context, userID int64) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	count, err := r.client.Get(ctx, quotaKey(userID)).Int64()
	if err == goredis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("get quota key: %w", err)
	}

	return count < int64(r.limit), nil
}

func (r *QuotaRepo) RecordConsumption(ctx context.Context, userID int64) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	key := quotaKey(userID)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("increment quota key: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, untilMidnight(r.now())).Err(); err != nil {
			return fmt.Errorf("set quota key ttl: %w", err)
		}
	}

	return nil
}

func quotaKey(userID int64) string {
	return "quota:likes:day:" + strconv.FormatInt(userID, 10)
}

func untilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
