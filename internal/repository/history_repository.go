// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"curriculum-design-go/internal/model"

	"github.com/go-redis/redis/v8"
)

const historyKey = "curriculum:recent_generations"

// HistoryRepository 定义了近期生成记录的操作接口。
type HistoryRepository interface {
	GetRecentEntries(ctx context.Context) ([]model.GenerationEntry, error)
	AppendEntry(ctx context.Context, entry model.GenerationEntry) error
}

type redisHistoryRepository struct {
	redisClient *redis.Client
	limit       int
	ttl         time.Duration
}

// NewHistoryRepository 创建一个新的 HistoryRepository 实例。
func NewHistoryRepository(redisClient *redis.Client, limit int, ttl time.Duration) HistoryRepository {
	return &redisHistoryRepository{redisClient: redisClient, limit: limit, ttl: ttl}
}

// GetRecentEntries 从 Redis 获取近期生成记录。
func (r *redisHistoryRepository) GetRecentEntries(ctx context.Context) ([]model.GenerationEntry, error) {
	jsonData, err := r.redisClient.Get(ctx, historyKey).Result()
	if err == redis.Nil {
		return []model.GenerationEntry{}, nil // 尚无记录
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation history: %w", err)
	}
	var entries []model.GenerationEntry
	if err := json.Unmarshal([]byte(jsonData), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generation history: %w", err)
	}
	return entries, nil
}

// AppendEntry 追加一条生成记录并更新 Redis。
func (r *redisHistoryRepository) AppendEntry(ctx context.Context, entry model.GenerationEntry) error {
	entries, err := r.GetRecentEntries(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	// 只保留最近 limit 条
	if len(entries) > r.limit {
		entries = entries[len(entries)-r.limit:]
	}
	jsonData, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal generation history: %w", err)
	}
	if err := r.redisClient.Set(ctx, historyKey, jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set generation history: %w", err)
	}
	return nil
}
