package extractor

import (
	"context"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/types"
)

//
// 抽取组件接口
//

// SkillParser 技能抽取接口
type SkillParser interface {
	// ExtractSkills 从全文和NER实体中抽取技能记录
	ExtractSkills(text string, entities []annotation.Entity) []types.Skill
}

// ExperienceParser 工作经历抽取接口
type ExperienceParser interface {
	// ExtractExperiences 从全文中抽取工作经历记录
	ExtractExperiences(ctx context.Context, text string) []types.Experience
}

// EducationParser 教育经历抽取接口
type EducationParser interface {
	// ExtractEducation 从全文中抽取教育经历记录
	ExtractEducation(ctx context.Context, text string) []types.Education
}

// ContactParser 联系方式抽取接口
type ContactParser interface {
	// ExtractContact 从全文和NER实体中抽取联系方式
	ExtractContact(text string, entities []annotation.Entity) types.Contact
}
