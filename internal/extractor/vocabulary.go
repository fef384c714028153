package extractor

import (
	"regexp"

	"resume-nlp-go/internal/types"
)

// 技能词表数据。五个来源集合互不相交，构建时合并为一张词条到分类的查找表。
// 词条全部为小写

var programmingLanguages = []string{
	"java", "python", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"php", "swift", "kotlin", "scala", "r", "matlab", "perl", "bash", "sql",
}

var frameworks = []string{
	"spring", "spring boot", "react", "angular", "vue", "django", "flask", "express",
	"nodejs", "node.js", ".net", "asp.net", "laravel", "rails", "fastapi",
}

var databases = []string{
	"postgresql", "mysql", "mongodb", "redis", "cassandra", "elasticsearch",
	"dynamodb", "oracle", "sql server", "sqlite", "neo4j",
}

var cloudPlatforms = []string{
	"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean", "kubernetes",
	"docker", "openshift",
}

var devopsTools = []string{
	"git", "jenkins", "gitlab", "github", "jira", "confluence", "maven", "gradle",
	"terraform", "ansible", "kafka", "rabbitmq", "nginx",
}

// Vocabulary 技能词表注册中心
// 构建一次后只读，供并发抽取请求共享
type Vocabulary struct {
	// 词条 -> 分类
	categories map[string]types.SkillCategory

	// 词条 -> 完整单词边界匹配模式
	wordPatterns map[string]*regexp.Regexp

	// 词条 -> 上下文窗口模式（首次出现位置前后各100字符）
	contextPatterns map[string]*regexp.Regexp
}

// NewVocabulary 构建词表并预编译每个词条的匹配模式
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		categories:      make(map[string]types.SkillCategory),
		wordPatterns:    make(map[string]*regexp.Regexp),
		contextPatterns: make(map[string]*regexp.Regexp),
	}

	sources := []struct {
		terms    []string
		category types.SkillCategory
	}{
		{programmingLanguages, types.CategoryProgrammingLanguage},
		{frameworks, types.CategoryFramework},
		{databases, types.CategoryDatabase},
		{cloudPlatforms, types.CategoryCloudPlatform},
		{devopsTools, types.CategoryDevOpsTool},
	}

	for _, source := range sources {
		for _, term := range source.terms {
			v.categories[term] = source.category
			quoted := regexp.QuoteMeta(term)
			v.wordPatterns[term] = regexp.MustCompile(`\b` + quoted + `\b`)
			v.contextPatterns[term] = regexp.MustCompile(`.{0,100}\b` + quoted + `\b.{0,100}`)
		}
	}

	return v
}

// Categorize 返回小写词条的分类，不在词表中的词条归为OTHER
func (v *Vocabulary) Categorize(term string) types.SkillCategory {
	if category, ok := v.categories[term]; ok {
		return category
	}
	return types.CategoryOther
}

// Terms 返回词条到分类的完整映射
// 返回的map为内部只读表，调用方不得修改；遍历顺序不保证稳定
func (v *Vocabulary) Terms() map[string]types.SkillCategory {
	return v.categories
}
