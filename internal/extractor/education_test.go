package extractor

import (
	"context"
	"testing"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	annotator := &stubAnnotator{entities: []annotation.Entity{
		{Text: "State University", Label: annotation.LabelOrg},
	}}
	e := NewEducationExtractor(annotator)

	text := "Education:\nBachelor of Science in Computer Science, GPA: 3.8/4.0, 2011 - 2015\n"

	educations := e.ExtractEducation(context.Background(), text)
	require.NotEmpty(t, educations, "教育章节应产出记录")

	first := educations[0]
	assert.Equal(t, "Bachelor", first.Degree)
	assert.Equal(t, "State University", first.InstitutionName)
	assert.Equal(t, types.LevelBachelors, first.EducationLevel)
	require.NotNil(t, first.GPA)
	assert.Equal(t, 3.8, *first.GPA, "GPA只取分子，分母不参与输出")
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2011-01-01", *first.StartDate)
	require.NotNil(t, first.EndDate)
	assert.Equal(t, "2015-01-01", *first.EndDate)
}

func TestExtractEducationCap(t *testing.T) {
	e := NewEducationExtractor(nil)

	// 两个学位模式互不排斥，前三行各命中两次，末行只命中宽松模式，共7次
	text := "Education:\nBachelor of Science, 2010\nMaster of Arts, 2012\nPhD in Physics, 2016\nDoctorate Philosophy, 2020\n"

	educations := e.ExtractEducation(context.Background(), text)
	assert.Len(t, educations, maxEducationRecords, "教育记录应以5条为上限")
}

func TestExtractEducationNoSection(t *testing.T) {
	e := NewEducationExtractor(nil)
	educations := e.ExtractEducation(context.Background(), "no section headers in this text\n")
	assert.Empty(t, educations)
}

func TestExtractGPA(t *testing.T) {
	gpa := extractGPA("GPA: 3.8/4.0")
	require.NotNil(t, gpa)
	assert.Equal(t, 3.8, *gpa)

	gpa = extractGPA("gpa 3.5")
	require.NotNil(t, gpa, "无冒号、无分母的写法也应命中")
	assert.Equal(t, 3.5, *gpa)

	assert.Nil(t, extractGPA("no grade information"), "无GPA时应返回nil")
}

func TestMapEducationLevel(t *testing.T) {
	tests := []struct {
		degree   string
		expected types.EducationLevel
	}{
		{"Ph.D.", types.LevelPHD},
		{"Doctorate", types.LevelPHD},
		{"Master", types.LevelMasters},
		{"M.S.", types.LevelMasters},
		{"MBA", types.LevelMasters},
		{"Bachelor", types.LevelBachelors},
		{"B.S.", types.LevelBachelors},
		{"Certificate", types.LevelOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mapEducationLevel(tt.degree), "学位 %q 的层次映射不符", tt.degree)
	}
}
