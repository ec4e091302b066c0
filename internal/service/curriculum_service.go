package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"curriculum-design-go/internal/model"
	"curriculum-design-go/internal/repository"
	"curriculum-design-go/pkg/llm"
	"curriculum-design-go/pkg/log"
)

// RequiredFieldsMessage 是完整生成路径缺少必填字段时返回的固定提示。
const RequiredFieldsMessage = "❌ Please fill in all required fields: Subject, Level, Duration, and Goals."

// 各环节的错误动作描述，渲染为 "Error <action>: <原因>"。
const (
	ActionStructure = "generating course structure"
	ActionTopics    = "recommending topics"
	ActionTimeline  = "creating curriculum plan"
	ActionOutcomes  = "mapping learning outcomes"
	ActionOptimize  = "optimizing curriculum"
)

// ErrorText 将生成失败统一渲染为文本，使输出文档可以继续拼接。
func ErrorText(action string, err error) string {
	return fmt.Sprintf("Error %s: %v", action, err)
}

// CurriculumService 定义了课程生成操作的接口。
type CurriculumService interface {
	GenerateCourseStructure(ctx context.Context, req model.CurriculumRequest) (string, error)
	RecommendTopics(ctx context.Context, req model.CurriculumRequest) (string, error)
	CreateCurriculumPlan(ctx context.Context, req model.CurriculumRequest, structure string) (string, error)
	MapLearningOutcomes(ctx context.Context, subject, level, modulesTopics string) (string, error)
	OptimizeCurriculum(ctx context.Context, req model.CurriculumRequest, currentPlan string) (string, error)
	GenerateFullCurriculum(ctx context.Context, req model.CurriculumRequest) string
}

type curriculumService struct {
	llmClient   llm.Client
	recordRepo  repository.RecordRepository
	historyRepo repository.HistoryRepository
}

// NewCurriculumService 创建一个新的 CurriculumService 实例。
func NewCurriculumService(llmClient llm.Client, recordRepo repository.RecordRepository, historyRepo repository.HistoryRepository) CurriculumService {
	return &curriculumService{
		llmClient:   llmClient,
		recordRepo:  recordRepo,
		historyRepo: historyRepo,
	}
}

// GenerateCourseStructure 生成包含模块与主题的课程大纲。
func (s *curriculumService) GenerateCourseStructure(ctx context.Context, req model.CurriculumRequest) (string, error) {
	messages := composeMessages(systemStructure, buildStructurePrompt(req))
	content, err := s.llmClient.ChatCompletion(ctx, messages, genParams(0.7, 2000))
	if err != nil {
		return "", err
	}
	s.persist(SectionStructure, req, content)
	return content, nil
}

// RecommendTopics 根据学科、层次与目标推荐主题。
func (s *curriculumService) RecommendTopics(ctx context.Context, req model.CurriculumRequest) (string, error) {
	messages := composeMessages(systemTopics, buildTopicsPrompt(req))
	content, err := s.llmClient.ChatCompletion(ctx, messages, genParams(0.7, 2000))
	if err != nil {
		return "", err
	}
	s.persist(SectionTopics, req, content)
	return content, nil
}

// CreateCurriculumPlan 生成按周或按次编排的教学计划。
// structure 参数与原有交互保持一致，但提示词并不使用它。
func (s *curriculumService) CreateCurriculumPlan(ctx context.Context, req model.CurriculumRequest, structure string) (string, error) {
	messages := composeMessages(systemTimeline, buildTimelinePrompt(req))
	content, err := s.llmClient.ChatCompletion(ctx, messages, genParams(0.7, 2500))
	if err != nil {
		return "", err
	}
	s.persist(SectionTimeline, req, content)
	return content, nil
}

// MapLearningOutcomes 将模块/主题映射为可度量的学习成果。
func (s *curriculumService) MapLearningOutcomes(ctx context.Context, subject, level, modulesTopics string) (string, error) {
	messages := composeMessages(systemOutcomes, buildOutcomesPrompt(subject, level, modulesTopics))
	content, err := s.llmClient.ChatCompletion(ctx, messages, genParams(0.6, 2500))
	if err != nil {
		return "", err
	}
	s.persist(SectionOutcomes, model.CurriculumRequest{Subject: subject, Level: level}, content)
	return content, nil
}

// OptimizeCurriculum 对当前课程计划做难度递进、均衡性等方面的优化建议。
func (s *curriculumService) OptimizeCurriculum(ctx context.Context, req model.CurriculumRequest, currentPlan string) (string, error) {
	messages := composeMessages(systemOptimize, buildOptimizePrompt(req, currentPlan))
	content, err := s.llmClient.ChatCompletion(ctx, messages, genParams(0.6, 2500))
	if err != nil {
		return "", err
	}
	s.persist(SectionOptimization, req, content)
	return content, nil
}

// GenerateFullCurriculum 按固定顺序生成全部五个环节并拼接成一份完整文档。
// 任一环节失败都不会中断整体流程，失败环节以错误文本占位。
func (s *curriculumService) GenerateFullCurriculum(ctx context.Context, req model.CurriculumRequest) string {
	if !req.HasRequiredFields() {
		return RequiredFieldsMessage
	}

	var output strings.Builder
	output.WriteString("# 🎓 COMPREHENSIVE CURRICULUM DESIGN SYSTEM\n\n")
	output.WriteString(fmt.Sprintf("**Subject:** %s | **Level:** %s | **Duration:** %s\n\n", req.Subject, req.Level, req.Duration))
	output.WriteString("---\n\n")

	output.WriteString("## 📚 1. COURSE STRUCTURE\n\n")
	structure := s.sectionText(ActionStructure)(s.GenerateCourseStructure(ctx, req))
	output.WriteString(structure + "\n\n---\n\n")

	output.WriteString("## 💡 2. RECOMMENDED TOPICS\n\n")
	topics := s.sectionText(ActionTopics)(s.RecommendTopics(ctx, req))
	output.WriteString(topics + "\n\n---\n\n")

	output.WriteString("## 📅 3. CURRICULUM TIMELINE\n\n")
	timeline := s.sectionText(ActionTimeline)(s.CreateCurriculumPlan(ctx, req, structure))
	output.WriteString(timeline + "\n\n---\n\n")

	output.WriteString("## 🎯 4. LEARNING OUTCOMES MAPPING\n\n")
	outcomes := s.sectionText(ActionOutcomes)(s.MapLearningOutcomes(ctx, req.Subject, req.Level, structure))
	output.WriteString(outcomes + "\n\n---\n\n")

	output.WriteString("## ⚡ 5. CURRICULUM OPTIMIZATION\n\n")
	optimization := s.sectionText(ActionOptimize)(s.OptimizeCurriculum(ctx, req, timeline))
	output.WriteString(optimization + "\n\n---\n\n")

	output.WriteString("\n\n✅ **Curriculum design complete!** Review each section above for your comprehensive academic plan.")

	document := output.String()
	s.persist(SectionFull, req, document)
	return document
}

// sectionText 把 (content, err) 折叠为可拼接的环节文本。
func (s *curriculumService) sectionText(action string) func(string, error) string {
	return func(content string, err error) string {
		if err != nil {
			log.Errorf("[CurriculumService] 环节生成失败, action: %s, error: %v", action, err)
			return ErrorText(action, err)
		}
		return content
	}
}

// persist 以后台上下文尽力保存生成结果，失败只记录日志，不影响响应。
func (s *curriculumService) persist(section string, req model.CurriculumRequest, content string) {
	ctx := context.Background()

	if s.recordRepo != nil {
		record := &model.CurriculumRecord{
			Section:   section,
			Subject:   req.Subject,
			Level:     req.Level,
			Duration:  req.Duration,
			Goals:     req.Goals,
			FocusArea: req.FocusArea,
			Content:   content,
		}
		if err := s.recordRepo.Create(ctx, record); err != nil {
			log.Errorf("Failed to save curriculum record: %v", err)
		}
	}

	if s.historyRepo != nil {
		entry := model.GenerationEntry{
			Section:   section,
			Subject:   req.Subject,
			Content:   content,
			Timestamp: time.Now(),
		}
		if err := s.historyRepo.AppendEntry(ctx, entry); err != nil {
			log.Errorf("Failed to save generation history: %v", err)
		}
	}
}
