// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"curriculum-design-go/internal/model"
	"curriculum-design-go/internal/service"
	"curriculum-design-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// 单独触发各环节时使用的输出标题。
const (
	headerStructure = "## 📚 COURSE STRUCTURE\n\n"
	headerTopics    = "## 💡 RECOMMENDED TOPICS\n\n"
	headerTimeline  = "## 📅 CURRICULUM TIMELINE\n\n"
	headerOutcomes  = "## 🎯 LEARNING OUTCOMES\n\n"
	headerOptimize  = "## ⚡ CURRICULUM OPTIMIZATION\n\n"
)

// CurriculumHandler 处理课程生成相关的 API 请求。
type CurriculumHandler struct {
	curriculumService service.CurriculumService
}

// NewCurriculumHandler 创建一个新的 CurriculumHandler 实例。
func NewCurriculumHandler(curriculumService service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

// bindRequest 解析表单提交的 JSON 请求体。
func bindRequest(c *gin.Context) (model.CurriculumRequest, bool) {
	var req model.CurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("[CurriculumHandler] 请求体解析失败: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "无效的请求参数", "data": nil})
		return req, false
	}
	return req, true
}

// respondMarkdown 以统一信封返回生成的 markdown 文本。
func respondMarkdown(c *gin.Context, markdown string) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "success", "data": markdown})
}

// sectionResult 把生成结果或错误折叠为带标题的输出文本。
// 外部调用失败不是 HTTP 错误：错误文本直接呈现在输出面板里。
func sectionResult(header, action, content string, err error) string {
	if err != nil {
		return header + service.ErrorText(action, err)
	}
	return header + content
}

// GenerateStructure 处理课程大纲生成请求。
func (h *CurriculumHandler) GenerateStructure(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	log.Infof("[CurriculumHandler] 收到课程大纲生成请求, subject: %s", req.Subject)
	content, err := h.curriculumService.GenerateCourseStructure(c.Request.Context(), req)
	respondMarkdown(c, sectionResult(headerStructure, service.ActionStructure, content, err))
}

// RecommendTopics 处理主题推荐请求。
func (h *CurriculumHandler) RecommendTopics(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	log.Infof("[CurriculumHandler] 收到主题推荐请求, subject: %s", req.Subject)
	content, err := h.curriculumService.RecommendTopics(c.Request.Context(), req)
	respondMarkdown(c, sectionResult(headerTopics, service.ActionTopics, content, err))
}

// CreateTimeline 处理教学计划生成请求。
func (h *CurriculumHandler) CreateTimeline(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	log.Infof("[CurriculumHandler] 收到教学计划生成请求, subject: %s", req.Subject)
	content, err := h.curriculumService.CreateCurriculumPlan(c.Request.Context(), req, "")
	respondMarkdown(c, sectionResult(headerTimeline, service.ActionTimeline, content, err))
}

// MapOutcomes 处理学习成果映射请求。
// 单独触发时不携带已生成的大纲，使用固定的内容占位。
func (h *CurriculumHandler) MapOutcomes(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	log.Infof("[CurriculumHandler] 收到学习成果映射请求, subject: %s", req.Subject)
	content, err := h.curriculumService.MapLearningOutcomes(c.Request.Context(), req.Subject, req.Level, "Course content as defined")
	respondMarkdown(c, sectionResult(headerOutcomes, service.ActionOutcomes, content, err))
}

// Optimize 处理课程优化请求。
func (h *CurriculumHandler) Optimize(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	log.Infof("[CurriculumHandler] 收到课程优化请求, subject: %s", req.Subject)
	content, err := h.curriculumService.OptimizeCurriculum(c.Request.Context(), req, "")
	respondMarkdown(c, sectionResult(headerOptimize, service.ActionOptimize, content, err))
}

// GenerateFull 处理完整课程体系生成请求。
// 必填字段校验只发生在这条路径上，缺字段时直接返回固定提示。
func (h *CurriculumHandler) GenerateFull(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	log.Infof("[CurriculumHandler] 收到完整课程生成请求, subject: %s", req.Subject)
	document := h.curriculumService.GenerateFullCurriculum(c.Request.Context(), req)
	respondMarkdown(c, document)
}
