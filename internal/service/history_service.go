package service

import (
	"context"

	"curriculum-design-go/internal/model"
	"curriculum-design-go/internal/repository"
)

// HistoryService 定义了生成历史查询的接口。
type HistoryService interface {
	GetRecentGenerations(ctx context.Context) ([]model.GenerationEntry, error)
	ListRecords(ctx context.Context, limit int) ([]model.CurriculumRecord, error)
}

type historyService struct {
	historyRepo repository.HistoryRepository
	recordRepo  repository.RecordRepository
}

// NewHistoryService 创建一个新的 HistoryService。
func NewHistoryService(historyRepo repository.HistoryRepository, recordRepo repository.RecordRepository) HistoryService {
	return &historyService{historyRepo: historyRepo, recordRepo: recordRepo}
}

// GetRecentGenerations 返回 Redis 中的近期生成记录。
func (s *historyService) GetRecentGenerations(ctx context.Context) ([]model.GenerationEntry, error) {
	return s.historyRepo.GetRecentEntries(ctx)
}

// ListRecords 返回 MySQL 归档中最近的生成结果。
func (s *historyService) ListRecords(ctx context.Context, limit int) ([]model.CurriculumRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.recordRepo.ListRecent(ctx, limit)
}
