package extractor

import (
	"context"
	"strconv"
	"strings"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/logger"
	"resume-nlp-go/internal/types"
)

// ExperienceExtractor 工作经历抽取器
type ExperienceExtractor struct {
	annotator annotation.Annotator
}

// NewExperienceExtractor 创建工作经历抽取器
// annotator为nil时跳过公司名识别，其余字段正常抽取
func NewExperienceExtractor(annotator annotation.Annotator) *ExperienceExtractor {
	return &ExperienceExtractor{annotator: annotator}
}

// ExtractExperiences 从全文中抽取工作经历。
// 先定位经历章节，再按空行切块，过短的块（去除首尾空白后不足20字符）丢弃，
// 每个存活的块产出一条记录，顺序与块顺序一致
func (e *ExperienceExtractor) ExtractExperiences(ctx context.Context, text string) []types.Experience {
	experiences := make([]types.Experience, 0)

	section, ok := ExtractSection(text, experienceAliases)
	if !ok {
		return experiences
	}

	for _, block := range blockSplitPattern.Split(section, -1) {
		if len(strings.TrimSpace(block)) < 20 {
			continue
		}
		experiences = append(experiences, e.parseBlock(ctx, block))
	}

	return experiences
}

// parseBlock 解析单个经历块
func (e *ExperienceExtractor) parseBlock(ctx context.Context, block string) types.Experience {
	lowerBlock := strings.ToLower(block)

	// 公司名取块内第一个ORG实体，标注失败降级为Unknown，不中断请求
	company := "Unknown"
	if e.annotator != nil {
		entities, err := e.annotator.Annotate(ctx, block)
		if err != nil {
			logger.Warn().Err(err).Msg("经历块标注失败，公司名降级为Unknown")
		}
		for _, entity := range entities {
			if entity.Label == annotation.LabelOrg {
				company = entity.Text
				break
			}
		}
	}

	// 职位名取块的第一行
	title := "Unknown"
	if lines := strings.Split(block, "\n"); len(lines) > 0 {
		title = strings.TrimSpace(lines[0])
	}

	dates := ExtractDates(block)
	isCurrent := strings.Contains(lowerBlock, "present") || strings.Contains(lowerBlock, "current")

	var startDate, endDate *string
	if len(dates) > 0 {
		startDate = &dates[0]
	}
	// 在职记录的结束日期强制为nil，即使解析出了第二个日期
	if len(dates) > 1 && !isCurrent {
		endDate = &dates[1]
	}

	return types.Experience{
		JobTitle:       truncate(title, 100),
		CompanyName:    company,
		StartDate:      startDate,
		EndDate:        endDate,
		IsCurrentRole:  isCurrent,
		Description:    truncate(block, 500),
		TeamSize:       extractTeamSize(lowerBlock),
		LeadershipRole: extractLeadershipRole(lowerBlock),
		ImpactMetrics:  extractImpactMetrics(lowerBlock),
	}
}

// extractTeamSize 抽取团队规模，四个模式按序尝试，第一个命中即返回
func extractTeamSize(lowerText string) *int {
	for _, re := range teamSizePatterns {
		m := re.FindStringSubmatch(lowerText)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}

// extractLeadershipRole 按固定优先级扫描领导力关键词，
// 列表靠前的词先命中先返回，即使后面的词也出现在文本中
func extractLeadershipRole(lowerText string) *string {
	for _, keyword := range leadershipKeywords {
		if strings.Contains(lowerText, keyword) {
			role := titleCase(keyword)
			return &role
		}
	}
	return nil
}

// extractImpactMetrics 收集业绩指标百分数。
// 四个模式全部扫描后按序合并，模式重叠产生的重复保留，
// 取前3个用逗号连接；无命中返回nil
func extractImpactMetrics(lowerText string) *string {
	metrics := make([]string, 0)
	for _, re := range impactPatterns {
		for _, m := range re.FindAllStringSubmatch(lowerText, -1) {
			metrics = append(metrics, m[1])
		}
	}
	if len(metrics) == 0 {
		return nil
	}
	if len(metrics) > 3 {
		metrics = metrics[:3]
	}
	joined := strings.Join(metrics, ", ")
	return &joined
}
