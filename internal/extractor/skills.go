package extractor

import (
	"strings"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/types"
)

// 置信度常量：词表命中高于NER实体推断
const (
	vocabularyConfidence = 0.85
	entityConfidence     = 0.6
)

// SkillExtractor 技能抽取器
type SkillExtractor struct {
	vocab *Vocabulary
}

// NewSkillExtractor 创建技能抽取器，词表由外部注入并共享
func NewSkillExtractor(vocab *Vocabulary) *SkillExtractor {
	return &SkillExtractor{vocab: vocab}
}

// ExtractSkills 从全文和NER实体中抽取技能记录。
// 先产出词表命中（遍历顺序不保证稳定），再产出实体推断的技能；
// 同名技能按小写去重，不会重复产出
func (e *SkillExtractor) ExtractSkills(text string, entities []annotation.Entity) []types.Skill {
	lower := strings.ToLower(text)
	skills := make([]types.Skill, 0)
	seen := make(map[string]bool)

	for term, category := range e.vocab.Terms() {
		if !e.vocab.wordPatterns[term].MatchString(lower) {
			continue
		}
		skills = append(skills, types.Skill{
			SkillName:        titleCase(term),
			Category:         category,
			ProficiencyLevel: e.inferProficiency(lower, term),
			ConfidenceScore:  vocabularyConfidence,
		})
		seen[term] = true
	}

	// PRODUCT/ORG实体作为补充技能，归入TOOL分类
	for _, entity := range entities {
		if entity.Label != annotation.LabelProduct && entity.Label != annotation.LabelOrg {
			continue
		}
		name := strings.TrimSpace(entity.Text)
		if len(name) <= 2 {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		skills = append(skills, types.Skill{
			SkillName:        name,
			Category:         types.CategoryTool,
			ProficiencyLevel: types.ProficiencyIntermediate,
			ConfidenceScore:  entityConfidence,
		})
		seen[key] = true
	}

	return skills
}

// inferProficiency 从词条首次出现位置的上下文推断熟练度。
// 只看首次出现，前后各取最多100字符，按分档优先级取第一个命中的档位，
// 无命中时默认INTERMEDIATE
func (e *SkillExtractor) inferProficiency(lowerText, term string) types.Proficiency {
	context := e.vocab.contextPatterns[term].FindString(lowerText)
	if context == "" {
		return types.ProficiencyIntermediate
	}

	for _, tier := range proficiencyTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(context, keyword) {
				return tier.level
			}
		}
	}
	return types.ProficiencyIntermediate
}
