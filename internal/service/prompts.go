// Package service 包含了应用的业务逻辑层。
package service

import (
	"fmt"

	"curriculum-design-go/internal/model"
	"curriculum-design-go/pkg/llm"
)

// 生成环节标识，用于归档与历史记录。
const (
	SectionStructure    = "structure"
	SectionTopics       = "topics"
	SectionTimeline     = "timeline"
	SectionOutcomes     = "outcomes"
	SectionOptimization = "optimization"
	SectionFull         = "full"
)

// 各环节的 system 消息。
const (
	systemStructure = "You are an expert academic curriculum designer who creates structured, comprehensive course outlines."
	systemTopics    = "You are an expert academic curriculum designer who recommends relevant and impactful learning topics."
	systemTimeline  = "You are an expert academic curriculum designer who creates realistic, well-paced learning schedules."
	systemOutcomes  = "You are an expert academic curriculum designer who writes clear, measurable learning outcomes aligned with Bloom's Taxonomy."
	systemOptimize  = "You are an expert academic curriculum designer who optimizes learning experiences for maximum effectiveness and balance."
)

// 优化环节只携带当前计划的前 500 字节作为摘要。
const optimizePlanSummaryLimit = 500

func buildStructurePrompt(req model.CurriculumRequest) string {
	return fmt.Sprintf(`You are an expert academic curriculum designer. Generate a comprehensive course structure for:

Subject: %s
Academic Level: %s
Duration: %s
Learning Goals: %s

Create a detailed course structure with:
1. Course title and description
2. 5-8 major modules/units
3. 3-5 topics under each module
4. Brief description for each module

Format the response clearly with headers and bullet points. Be structured and academic.`,
		req.Subject, req.Level, req.Duration, req.Goals)
}

func buildTopicsPrompt(req model.CurriculumRequest) string {
	focusArea := req.FocusArea
	if focusArea == "" {
		focusArea = "General coverage"
	}
	return fmt.Sprintf(`You are an expert academic curriculum designer. Recommend relevant topics for:

Subject: %s
Academic Level: %s
Learning Goals: %s
Focus Area: %s

Provide:
1. 10-15 recommended topics
2. Brief justification for each topic's inclusion
3. Suggested depth of coverage (introductory/intermediate/advanced)
4. Prerequisites if any

Be specific and academically rigorous.`,
		req.Subject, req.Level, req.Goals, focusArea)
}

func buildTimelinePrompt(req model.CurriculumRequest) string {
	return fmt.Sprintf(`You are an expert academic curriculum designer. Create a detailed timeline-based curriculum plan for:

Subject: %s
Academic Level: %s
Duration: %s
Learning Goals: %s

Create a week-by-week or session-by-session plan that includes:
1. Clear timeline (Week 1, Week 2, etc. or Session 1, Session 2, etc.)
2. Topics to be covered in each period
3. Suggested activities (lectures, labs, assignments, assessments)
4. Estimated hours per topic
5. Key milestones and assessment points

Ensure logical progression from basics to advanced concepts. Be realistic about pacing.`,
		req.Subject, req.Level, req.Duration, req.Goals)
}

func buildOutcomesPrompt(subject, level, modulesTopics string) string {
	return fmt.Sprintf(`You are an expert academic curriculum designer. Create measurable learning outcomes for:

Subject: %s
Academic Level: %s
Content: %s

For each major module/topic, define:
1. 3-5 specific learning outcomes using Bloom's Taxonomy
2. Use action verbs (understand, analyze, create, evaluate, apply, etc.)
3. Make outcomes measurable and assessable
4. Align outcomes with the academic level
5. Include cognitive, skill-based, and affective outcomes where appropriate

Format: Module/Topic → Learning Outcomes (numbered list)

Be precise and use proper educational outcome language.`,
		subject, level, modulesTopics)
}

func buildOptimizePrompt(req model.CurriculumRequest, currentPlan string) string {
	planSummary := currentPlan
	if planSummary == "" {
		planSummary = "Generate fresh optimization"
	} else if len(planSummary) > optimizePlanSummaryLimit {
		planSummary = planSummary[:optimizePlanSummaryLimit]
	}
	return fmt.Sprintf(`You are an expert academic curriculum designer. Optimize the curriculum for:

Subject: %s
Academic Level: %s
Duration: %s
Learning Goals: %s
Current Plan Summary: %s

Analyze and optimize for:
1. **Difficulty Progression**: Ensure smooth transition from basic to advanced
2. **Topic Relevance**: Prioritize high-impact, industry-relevant topics
3. **Academic Balance**: Balance theory, practice, and assessments
4. **Cognitive Load**: Avoid overwhelming students in any period
5. **Redundancy**: Identify and eliminate duplicate content
6. **Gaps**: Identify missing critical topics

Provide:
- Overall curriculum health score (0-100)
- Specific optimization recommendations
- Suggested reordering or restructuring
- Balance metrics (theory vs practice ratio, assessment distribution)

Be critical and constructive.`,
		req.Subject, req.Level, req.Duration, req.Goals, planSummary)
}

// genParams 构造单次调用的生成参数。
func genParams(temperature float64, maxTokens int) *llm.GenerationParams {
	return &llm.GenerationParams{Temperature: &temperature, MaxTokens: &maxTokens}
}

// composeMessages 组装 system + user 两条消息。
func composeMessages(systemMsg, userPrompt string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: systemMsg},
		{Role: "user", Content: userPrompt},
	}
}
