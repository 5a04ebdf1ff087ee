package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

// BidGroupCache stores compiled bid groups as JSON under
// "bidgroup:{profile}:{max_lines}".
type BidGroupCache struct {
	redis *redis.Client
}

func NewBidGroupCache(redisClient *redis.Client) *BidGroupCache {
	return &BidGroupCache{redis: redisClient}
}

func (c *BidGroupCache) Get(ctx context.Context, profileID string, maxLines int) ([]models.TripPropertyCommand, error) {
	data, err := c.redis.Get(ctx, bidGroupKey(profileID, maxLines)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, derr.ErrBidGroupNotFound
		}
		return nil, fmt.Errorf("redis get bid group: %w", err)
	}

	var cmds []models.TripPropertyCommand
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("unmarshal cached bid group: %w", err)
	}

	return cmds, nil
}

func (c *BidGroupCache) Set(ctx context.Context, profileID string, maxLines int, commands []models.TripPropertyCommand, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(commands)
	if err != nil {
		return fmt.Errorf("marshal bid group for cache: %w", err)
	}

	if err := c.redis.Set(ctx, bidGroupKey(profileID, maxLines), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set bid group: %w", err)
	}

	return nil
}

// bidGroupKey keeps the id's case: profile stores may match ids exactly, so
// "OLI" and "oli" must not share an entry.
func bidGroupKey(profileID string, maxLines int) string {
	return fmt.Sprintf("bidgroup:%s:%d", strings.TrimSpace(profileID), maxLines)
}
