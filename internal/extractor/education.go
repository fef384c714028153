package extractor

import (
	"context"
	"strconv"
	"strings"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/logger"
	"resume-nlp-go/internal/types"
)

// 单次抽取最多产出的教育记录数
const maxEducationRecords = 5

// EducationExtractor 教育经历抽取器
type EducationExtractor struct {
	annotator annotation.Annotator
}

// NewEducationExtractor 创建教育经历抽取器
func NewEducationExtractor(annotator annotation.Annotator) *EducationExtractor {
	return &EducationExtractor{annotator: annotator}
}

// ExtractEducation 从全文中抽取教育经历。
// 两个学位模式依次在整个教育章节上扫描，互不排斥，重叠命中会产出相近的重复记录。
// 院校、GPA和日期按章节整体抽取一次，复用到每条记录；结果上限5条
func (e *EducationExtractor) ExtractEducation(ctx context.Context, text string) []types.Education {
	educations := make([]types.Education, 0)

	section, ok := ExtractSection(text, educationAliases)
	if !ok {
		return educations
	}

	institution := "Unknown"
	if e.annotator != nil {
		entities, err := e.annotator.Annotate(ctx, section)
		if err != nil {
			logger.Warn().Err(err).Msg("教育章节标注失败，院校名降级为Unknown")
		}
		for _, entity := range entities {
			if entity.Label == annotation.LabelOrg {
				institution = entity.Text
				break
			}
		}
	}

	gpa := extractGPA(section)
	dates := ExtractDates(section)
	var startDate, endDate *string
	if len(dates) > 0 {
		startDate = &dates[0]
	}
	if len(dates) > 1 {
		endDate = &dates[1]
	}

	for _, re := range degreePatterns {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			degree := m[1]
			field := strings.TrimSpace(m[2])
			if field == "" {
				field = "Unknown"
			}
			educations = append(educations, types.Education{
				Degree:          degree,
				FieldOfStudy:    truncate(field, 100),
				InstitutionName: institution,
				GPA:             gpa,
				StartDate:       startDate,
				EndDate:         endDate,
				EducationLevel:  mapEducationLevel(degree),
			})
		}
	}

	if len(educations) > maxEducationRecords {
		educations = educations[:maxEducationRecords]
	}
	return educations
}

// extractGPA 匹配"GPA: N[/M]"并返回N，分母解析但不参与输出（缺省按4.0制）。
// 不校验N是否不超过M
func extractGPA(text string) *float64 {
	m := gpaPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	gpa, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &gpa
}

// mapEducationLevel 学位词到学历层次的映射。
// 学位词去掉句点后按子串检查，博士优先于硕士，硕士优先于学士
func mapEducationLevel(degree string) types.EducationLevel {
	normalized := strings.ToLower(strings.ReplaceAll(degree, ".", ""))

	switch {
	case strings.Contains(normalized, "phd") || strings.Contains(normalized, "doctorate"):
		return types.LevelPHD
	case strings.Contains(normalized, "master") || strings.Contains(normalized, "ms") ||
		strings.Contains(normalized, "ma") || strings.Contains(normalized, "mba"):
		return types.LevelMasters
	case strings.Contains(normalized, "bachelor") || strings.Contains(normalized, "bs") ||
		strings.Contains(normalized, "ba"):
		return types.LevelBachelors
	default:
		return types.LevelOther
	}
}
