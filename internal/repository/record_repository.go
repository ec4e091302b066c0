package repository

import (
	"context"
	"fmt"

	"curriculum-design-go/internal/model"

	"gorm.io/gorm"
)

// RecordRepository 定义了课程生成归档的操作接口。
type RecordRepository interface {
	Create(ctx context.Context, record *model.CurriculumRecord) error
	ListRecent(ctx context.Context, limit int) ([]model.CurriculumRecord, error)
}

type gormRecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建一个新的 RecordRepository 实例。
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &gormRecordRepository{db: db}
}

// Create 将一条生成结果写入归档表。
func (r *gormRecordRepository) Create(ctx context.Context, record *model.CurriculumRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create curriculum record: %w", err)
	}
	return nil
}

// ListRecent 按创建时间倒序返回最近的归档记录。
func (r *gormRecordRepository) ListRecent(ctx context.Context, limit int) ([]model.CurriculumRecord, error) {
	var records []model.CurriculumRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list curriculum records: %w", err)
	}
	return records, nil
}
