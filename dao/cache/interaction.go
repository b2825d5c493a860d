package cache

import (
	"Pulse/types"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InteractionCache 用户互动集合的 Redis 缓存
// 只加速"我是否点过/藏过"的判定，出错一律回落数据库，不作为权威数据
type InteractionCache struct {
	redis *redis.Client
}

func NewInteractionCache(rds *redis.Client) *InteractionCache {
	return &InteractionCache{redis: rds}
}

// relation 取 "liked" 或 "bookmarked"
func (c *InteractionCache) key(relation string, kind types.TargetKind, userID int64) string {
	return fmt.Sprintf("user:%s:%ss:%d", relation, kind, userID)
}

// HasPositive 命中返回 true；false 可能只是缓存未预热，调用方需回查数据库
func (c *InteractionCache) HasPositive(ctx context.Context, relation string, kind types.TargetKind, userID, targetID int64) bool {
	ok, err := c.redis.SIsMember(ctx, c.key(relation, kind, userID), targetID).Result()
	return err == nil && ok
}

func (c *InteractionCache) Add(ctx context.Context, relation string, kind types.TargetKind, userID, targetID int64) {
	c.redis.SAdd(ctx, c.key(relation, kind, userID), targetID)
}

func (c *InteractionCache) Remove(ctx context.Context, relation string, kind types.TargetKind, userID, targetID int64) {
	c.redis.SRem(ctx, c.key(relation, kind, userID), targetID)
}

// ClearUser 账号注销时清掉该用户两种目标类型的集合
func (c *InteractionCache) ClearUser(ctx context.Context, relation string, userID int64) {
	_, _ = c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key(relation, types.TargetPost, userID))
		pipe.Del(ctx, c.key(relation, types.TargetActivity, userID))
		return nil
	})
}
