package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"resume-nlp-go/internal/types"
)

// 本文件集中存放抽取流水线共享的正则表。所有模式在包初始化时编译一次，
// 之后只读，多个并发请求共用同一份表。

// 日期模式，按优先级排列：英文月份+年份、MM/YYYY、纯四位年份。
// 三个模式依次全部扫描，命中结果按模式顺序累计
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}`),
	regexp.MustCompile(`\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{4}`),
}

// 团队规模模式，在小写文本上匹配，第一个命中的捕获组即为人数
var teamSizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`team of (\d+)`),
	regexp.MustCompile(`led (\d+)`),
	regexp.MustCompile(`managed (\d+)`),
	regexp.MustCompile(`(\d+)[- ]person team`),
}

// 领导力关键词，顺序即优先级：列表靠前的词先命中先返回
var leadershipKeywords = []string{
	"lead", "manager", "director", "head", "senior", "principal", "architect", "chief",
}

// 业绩指标模式，四个模式全部扫描后合并，模式之间可能产生重复命中
var impactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+%)`),
	regexp.MustCompile(`reduced.*?by (\d+%)`),
	regexp.MustCompile(`increased.*?by (\d+%)`),
	regexp.MustCompile(`improved.*?by (\d+%)`),
}

// GPA模式，分母可选且不参与输出
var gpaPattern = regexp.MustCompile(`(?i)GPA:?\s*(\d+\.?\d*)\s*/?\s*(\d+\.?\d*)?`)

// 联系方式模式
var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`\+?1?\s*\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// 学位模式，两个模式依次全部扫描，互不排斥：
// 模式A要求学位词与专业之间出现 in/of 连接词，模式B更宽松。
// 学位词忽略大小写，专业短语必须以大写字母开头
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`((?i:Bachelor|Master|PhD|M\.?S\.?|B\.?S\.?|B\.?A\.?|M\.?A\.?|MBA|Ph\.?D\.?)).*?(?:in|of)\s+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`((?i:Bachelor|Master|PhD|Doctorate)).*?([A-Z][a-zA-Z\s]+)`),
}

// 经历块分隔模式：两个及以上连续换行
var blockSplitPattern = regexp.MustCompile(`\n{2,}`)

// 熟练度关键词分档，按优先级从高到低检查，取第一个命中的档位。
// 关键词按子串匹配上下文，而非完整单词
var proficiencyTiers = []struct {
	level    types.Proficiency
	keywords []string
}{
	{types.ProficiencyExpert, []string{"expert", "advanced", "proficient", "senior", "lead"}},
	{types.ProficiencyAdvanced, []string{"experienced", "strong", "solid"}},
	{types.ProficiencyBeginner, []string{"basic", "beginner", "learning", "familiar"}},
}

// truncate 按字符数截断字符串
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// titleCase 将每个单词的首字母大写，其余字母小写。
// 非字母字符视为单词边界，因此 "node.js" 变为 "Node.Js"
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevIsLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevIsLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevIsLetter = isLetter
	}
	return b.String()
}
