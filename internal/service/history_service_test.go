package service

import (
	"context"
	"testing"
	"time"

	"curriculum-design-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecentGenerations(t *testing.T) {
	historyRepo := &fakeHistoryRepo{entries: []model.GenerationEntry{
		{Section: SectionStructure, Subject: "Math", Content: "outline", Timestamp: time.Now()},
	}}
	svc := NewHistoryService(historyRepo, &fakeRecordRepo{})

	entries, err := svc.GetRecentGenerations(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Math", entries[0].Subject)
}

func TestListRecordsLimitClamped(t *testing.T) {
	recordRepo := &fakeRecordRepo{}
	for i := 0; i < 30; i++ {
		require.NoError(t, recordRepo.Create(context.Background(), &model.CurriculumRecord{
			Section: SectionTopics,
			Subject: "Physics",
			Content: "topics",
		}))
	}
	svc := NewHistoryService(&fakeHistoryRepo{}, recordRepo)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero falls back to default", limit: 0, want: 20},
		{name: "negative falls back to default", limit: -5, want: 20},
		{name: "oversized falls back to default", limit: 500, want: 20},
		{name: "normal limit respected", limit: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := svc.ListRecords(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}
