package extractor

import (
	"context"
	"testing"

	"resume-nlp-go/internal/annotation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnnotator 返回固定实体集合或固定错误的标注器桩
type stubAnnotator struct {
	entities []annotation.Entity
	err      error
}

func (s *stubAnnotator) Annotate(ctx context.Context, text string) ([]annotation.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entities, nil
}

func TestParseExperienceBlock(t *testing.T) {
	annotator := &stubAnnotator{entities: []annotation.Entity{
		{Text: "Acme Corp", Label: annotation.LabelOrg},
	}}
	e := NewExperienceExtractor(annotator)

	block := "Senior Engineer\nAcme Corp\nJan 2019 - Present\nLed a team of 8, improved deployment speed by 30%"
	exp := e.parseBlock(context.Background(), block)

	assert.Equal(t, "Senior Engineer", exp.JobTitle, "职位名应取块的第一行")
	assert.Equal(t, "Acme Corp", exp.CompanyName, "公司名应取第一个ORG实体")
	require.NotNil(t, exp.StartDate)
	assert.Equal(t, "2019-01-01", *exp.StartDate)
	assert.True(t, exp.IsCurrentRole, "包含present的块应标记为在职")
	assert.Nil(t, exp.EndDate, "在职记录的结束日期必须为空")
	require.NotNil(t, exp.TeamSize)
	assert.Equal(t, 8, *exp.TeamSize)
	require.NotNil(t, exp.LeadershipRole)
	assert.Equal(t, "Senior", *exp.LeadershipRole, "领导力关键词按固定优先级取第一个命中")
	require.NotNil(t, exp.ImpactMetrics)
	assert.Contains(t, *exp.ImpactMetrics, "30%")
}

func TestParseExperienceBlockAnnotateFailure(t *testing.T) {
	annotator := &stubAnnotator{err: annotation.ErrServerUnreachable}
	e := NewExperienceExtractor(annotator)

	exp := e.parseBlock(context.Background(), "Backend Developer\nWorked on payments from 2018 to 2020")
	assert.Equal(t, "Unknown", exp.CompanyName, "标注失败时公司名应降级为Unknown而非中断")
	assert.Equal(t, "Backend Developer", exp.JobTitle)
	assert.False(t, exp.IsCurrentRole)
	require.NotNil(t, exp.EndDate)
	assert.Equal(t, "2020-01-01", *exp.EndDate)
}

func TestExtractExperiences(t *testing.T) {
	annotator := &stubAnnotator{entities: []annotation.Entity{
		{Text: "Initech", Label: annotation.LabelOrg},
	}}
	e := NewExperienceExtractor(annotator)

	text := "Experience:\nBackend Developer\nInitech\nMar 2016 - Dec 2018\nBuilt the billing pipeline and kept it alive\n\nok\n\nEducation\nState University\n"

	experiences := e.ExtractExperiences(context.Background(), text)
	require.Len(t, experiences, 1, "过短的块应被丢弃，只保留一条经历")
	assert.Equal(t, "Initech", experiences[0].CompanyName)
	require.NotNil(t, experiences[0].StartDate)
	assert.Equal(t, "2016-03-01", *experiences[0].StartDate)
}

func TestExtractExperiencesNoSection(t *testing.T) {
	e := NewExperienceExtractor(nil)
	experiences := e.ExtractExperiences(context.Background(), "a resume without any section headers\n")
	assert.Empty(t, experiences, "无经历章节时应返回空列表")
}

func TestExtractTeamSize(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"led a team of 12 engineers", 12},
		{"managed 5 direct reports", 5},
		{"worked in a 6-person team", 6},
	}
	for _, tt := range tests {
		size := extractTeamSize(tt.text)
		require.NotNil(t, size, "文本 %q 应解析出团队规模", tt.text)
		assert.Equal(t, tt.expected, *size)
	}

	assert.Nil(t, extractTeamSize("no numbers to be found"), "无命中时应返回nil")
}

func TestExtractLeadershipRolePriority(t *testing.T) {
	// "lead"在优先级列表中先于"manager"，即使后者先出现在文本里
	role := extractLeadershipRole("engineering manager and tech lead")
	require.NotNil(t, role)
	assert.Equal(t, "Lead", *role)

	assert.Nil(t, extractLeadershipRole("individual contributor"), "无领导力关键词时应返回nil")
}

func TestExtractImpactMetrics(t *testing.T) {
	metrics := extractImpactMetrics("reduced latency by 40% and increased throughput by 25%")
	require.NotNil(t, metrics)
	assert.Contains(t, *metrics, "40%")
	assert.Contains(t, *metrics, "25%")

	assert.Nil(t, extractImpactMetrics("shipped features on time"), "无百分数时应返回nil")
}
