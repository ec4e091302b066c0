package handler

import (
	"net/http"
	"strconv"

	"curriculum-design-go/internal/service"
	"curriculum-design-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// HistoryHandler 处理生成历史相关的 API 请求。
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler 创建一个新的 HistoryHandler。
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory 返回 Redis 中的近期生成记录。
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	entries, err := h.historyService.GetRecentGenerations(c.Request.Context())
	if err != nil {
		log.Errorf("[HistoryHandler] 获取生成历史失败, error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Failed to retrieve generation history",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    entries,
	})
}

// ListRecords 返回 MySQL 归档中最近的生成结果。
func (h *HistoryHandler) ListRecords(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}

	records, err := h.historyService.ListRecords(c.Request.Context(), limit)
	if err != nil {
		log.Errorf("[HistoryHandler] 获取归档记录失败, error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Failed to retrieve curriculum records",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    records,
	})
}
