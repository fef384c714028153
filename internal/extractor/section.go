package extractor

import (
	"github.com/dlclark/regexp2"
)

// 章节抽取：在全文中定位一个带标题的子段落。
// 标题匹配不区分大小写，但返回的内容保留原文大小写，
// 后续抽取器依赖原始大小写（职位名、专业短语的首字母判断）。

// 识别为章节终止符的标题词，命中任意一个即认为当前章节结束
const sectionTerminators = `education|experience|skills|projects|certifications`

// 经历章节的标题别名，按顺序尝试，先命中先返回
var experienceAliases = []string{"experience", "work history", "employment"}

// 教育章节的标题别名
var educationAliases = []string{"education", "academic", "qualification"}

// 为已知别名预编译的章节模式表，init后只读
var sectionPatterns = map[string]*regexp2.Regexp{}

func init() {
	for _, alias := range experienceAliases {
		sectionPatterns[alias] = compileSectionPattern(alias)
	}
	for _, alias := range educationAliases {
		sectionPatterns[alias] = compileSectionPattern(alias)
	}
}

// compileSectionPattern 编译单个别名的章节模式。
// 模式要求别名出现在行首（允许前导空白），后接冒号或换行，
// 内容惰性匹配到下一个已知章节标题或文本结尾。
// 终止判断使用前瞻断言，标准库RE2不支持，因此这里用regexp2
func compileSectionPattern(alias string) *regexp2.Regexp {
	pattern := `(?:^|\n)\s*` + alias + `\s*[:\n](.+?)(?=\n\s*(?:` + sectionTerminators + `|$))`
	return regexp2.MustCompile(pattern, regexp2.IgnoreCase|regexp2.Singleline)
}

// ExtractSection 按别名顺序查找章节，返回第一个命中的章节内容。
// 所有别名都未命中时返回空串和false
func ExtractSection(text string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		re, ok := sectionPatterns[alias]
		if !ok {
			re = compileSectionPattern(alias)
		}
		match, err := re.FindStringMatch(text)
		if err != nil || match == nil {
			continue
		}
		group := match.GroupByNumber(1)
		if group == nil {
			continue
		}
		return group.String(), true
	}
	return "", false
}
