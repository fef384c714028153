package extractor

import (
	"strings"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/types"
)

// ContactExtractor 联系方式抽取器
// 各字段独立抽取，互不校验，每个字段取第一个命中
type ContactExtractor struct{}

// NewContactExtractor 创建联系方式抽取器
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// ExtractContact 从全文和NER实体中抽取联系方式。
// 姓名取第一个PERSON实体；电话由三段捕获组用连字符拼接；
// LinkedIn/GitHub取小写文本上的路径匹配并补上https://前缀
func (e *ContactExtractor) ExtractContact(text string, entities []annotation.Entity) types.Contact {
	var contact types.Contact

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = &email
	}

	if m := phonePattern.FindStringSubmatch(text); m != nil {
		phone := strings.Join(m[1:4], "-")
		contact.Phone = &phone
	}

	lower := strings.ToLower(text)
	if path := linkedinPattern.FindString(lower); path != "" {
		url := "https://" + path
		contact.LinkedinURL = &url
	}
	if path := githubPattern.FindString(lower); path != "" {
		url := "https://" + path
		contact.GithubURL = &url
	}

	for _, entity := range entities {
		if entity.Label == annotation.LabelPerson {
			name := entity.Text
			contact.FullName = &name
			break
		}
	}

	return contact
}
