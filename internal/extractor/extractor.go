package extractor

import (
	"context"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/logger"
	"resume-nlp-go/internal/types"
)

// Components 抽取流水线的组件集合
type Components struct {
	Skills      SkillParser
	Experiences ExperienceParser
	Education   EducationParser
	Contact     ContactParser
}

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// WithSkillParser 设置技能抽取组件
func WithSkillParser(parser SkillParser) ComponentOpt {
	return func(c *Components) {
		c.Skills = parser
	}
}

// WithExperienceParser 设置工作经历抽取组件
func WithExperienceParser(parser ExperienceParser) ComponentOpt {
	return func(c *Components) {
		c.Experiences = parser
	}
}

// WithEducationParser 设置教育经历抽取组件
func WithEducationParser(parser EducationParser) ComponentOpt {
	return func(c *Components) {
		c.Education = parser
	}
}

// WithContactParser 设置联系方式抽取组件
func WithContactParser(parser ContactParser) ComponentOpt {
	return func(c *Components) {
		c.Contact = parser
	}
}

// ResumeExtractor 简历抽取器，聚合四个字段抽取组件并组装响应。
// 本身不持有跨请求可变状态，词表与模式表构建后只读，可安全并发调用
type ResumeExtractor struct {
	annotator  annotation.Annotator
	components Components
}

// NewResumeExtractor 创建简历抽取器。
// annotator为nil时实体相关字段全部降级为空值，其余抽取照常进行
func NewResumeExtractor(annotator annotation.Annotator, opts ...ComponentOpt) *ResumeExtractor {
	vocab := NewVocabulary()
	components := Components{
		Skills:      NewSkillExtractor(vocab),
		Experiences: NewExperienceExtractor(annotator),
		Education:   NewEducationExtractor(annotator),
		Contact:     NewContactExtractor(),
	}

	for _, opt := range opts {
		opt(&components)
	}

	return &ResumeExtractor{
		annotator:  annotator,
		components: components,
	}
}

// ExtractAll 对一段简历文本执行完整抽取并组装结果。
// 全文标注一次，实体供技能和联系方式抽取共用；
// 经历和教育抽取器各自对章节内容再做标注。
// 单个字段抽取落空只会让该字段降级为空值，不会使整个请求失败
func (e *ResumeExtractor) ExtractAll(ctx context.Context, text string) *types.ExtractionResult {
	var entities []annotation.Entity
	if e.annotator != nil {
		var err error
		entities, err = e.annotator.Annotate(ctx, text)
		if err != nil {
			logger.Warn().Err(err).Msg("全文标注失败，实体相关字段降级为空")
			entities = nil
		}
	}

	return &types.ExtractionResult{
		Skills:      e.components.Skills.ExtractSkills(text, entities),
		Experiences: e.components.Experiences.ExtractExperiences(ctx, text),
		Education:   e.components.Education.ExtractEducation(ctx, text),
		Contact:     e.components.Contact.ExtractContact(text, entities),
	}
}
