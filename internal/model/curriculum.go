// Package model 包含了应用的数据模型定义。
package model

import "time"

// CurriculumRequest 代表表单提交的课程设计输入。
// Subject/Level/Duration/Goals 为必填项，FocusArea 可选。
type CurriculumRequest struct {
	Subject   string `json:"subject"`
	Level     string `json:"level"`
	Duration  string `json:"duration"`
	Goals     string `json:"goals"`
	FocusArea string `json:"focusArea"`
}

// HasRequiredFields 检查四个必填字段是否都已填写。
func (r CurriculumRequest) HasRequiredFields() bool {
	return r.Subject != "" && r.Level != "" && r.Duration != "" && r.Goals != ""
}

// GenerationEntry 代表存储在 Redis 中的单条生成记录。
type GenerationEntry struct {
	Section   string    `json:"section"` // "structure"、"topics" 等
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// CurriculumRecord 代表一次单独的课程生成结果归档。
type CurriculumRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Section   string    `gorm:"size:32;index;not null" json:"section"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Level     string    `gorm:"size:64" json:"level"`
	Duration  string    `gorm:"size:64" json:"duration"`
	Goals     string    `gorm:"type:text" json:"goals"`
	FocusArea string    `gorm:"size:255" json:"focusArea"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (CurriculumRecord) TableName() string {
	return "curriculum_records"
}
