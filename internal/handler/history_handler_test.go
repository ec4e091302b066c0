package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curriculum-design-go/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistoryService struct {
	entries   []model.GenerationEntry
	records   []model.CurriculumRecord
	err       error
	lastLimit int
}

func (f *fakeHistoryService) GetRecentGenerations(_ context.Context) ([]model.GenerationEntry, error) {
	return f.entries, f.err
}

func (f *fakeHistoryService) ListRecords(_ context.Context, limit int) ([]model.CurriculumRecord, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.records) {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func newHistoryRouter(svc *fakeHistoryService) *gin.Engine {
	r := gin.New()
	h := NewHistoryHandler(svc)
	r.GET("/api/v1/curriculum/history", h.GetHistory)
	r.GET("/api/v1/curriculum/records", h.ListRecords)
	return r
}

func TestGetHistory(t *testing.T) {
	svc := &fakeHistoryService{entries: []model.GenerationEntry{
		{Section: "structure", Subject: "Chemistry", Content: "outline", Timestamp: time.Now()},
	}}
	r := newHistoryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/curriculum/history", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Code int                     `json:"code"`
		Data []model.GenerationEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Chemistry", resp.Data[0].Subject)
}

func TestGetHistoryFailure(t *testing.T) {
	svc := &fakeHistoryService{err: errors.New("redis down")}
	r := newHistoryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/curriculum/history", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListRecordsLimitParam(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default limit", query: "", wantLimit: 20},
		{name: "explicit limit", query: "?limit=5", wantLimit: 5},
		{name: "invalid limit falls back", query: "?limit=abc", wantLimit: 20},
		{name: "non-positive limit falls back", query: "?limit=0", wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeHistoryService{records: []model.CurriculumRecord{{Section: "full", Subject: "Biology", Content: "doc"}}}
			r := newHistoryRouter(svc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/curriculum/records"+tt.query, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLimit, svc.lastLimit)
		})
	}
}
