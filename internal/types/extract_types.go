package types

// SkillCategory 技能分类
type SkillCategory string

const (
	// 编程语言
	CategoryProgrammingLanguage SkillCategory = "PROGRAMMING_LANGUAGE"
	// 框架
	CategoryFramework SkillCategory = "FRAMEWORK"
	// 数据库
	CategoryDatabase SkillCategory = "DATABASE"
	// 云平台
	CategoryCloudPlatform SkillCategory = "CLOUD_PLATFORM"
	// DevOps工具
	CategoryDevOpsTool SkillCategory = "DEVOPS_TOOL"
	// 工具类（NER实体推断出的技能统一归入此类）
	CategoryTool SkillCategory = "TOOL"
	// 其他
	CategoryOther SkillCategory = "OTHER"
)

// Proficiency 技能熟练程度
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "BEGINNER"
	ProficiencyIntermediate Proficiency = "INTERMEDIATE"
	ProficiencyAdvanced     Proficiency = "ADVANCED"
	ProficiencyExpert       Proficiency = "EXPERT"
)

// EducationLevel 学历层次
type EducationLevel string

const (
	LevelPHD       EducationLevel = "PHD"
	LevelMasters   EducationLevel = "MASTERS"
	LevelBachelors EducationLevel = "BACHELORS"
	LevelOther     EducationLevel = "OTHER"
)

// Skill 一条技能记录
// 词表命中的技能置信度为0.85，NER实体推断的技能置信度为0.6
type Skill struct {
	SkillName        string        `json:"skillName"`
	Category         SkillCategory `json:"category"`
	ProficiencyLevel Proficiency   `json:"proficiencyLevel"`
	ConfidenceScore  float64       `json:"confidenceScore"`
}

// Experience 一条工作经历记录
// IsCurrentRole为true时EndDate必须为nil，即使文本中解析出了第二个日期
type Experience struct {
	JobTitle       string  `json:"jobTitle"`
	CompanyName    string  `json:"companyName"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	IsCurrentRole  bool    `json:"isCurrentRole"`
	Description    string  `json:"description"`
	TeamSize       *int    `json:"teamSize"`
	LeadershipRole *string `json:"leadershipRole"`
	ImpactMetrics  *string `json:"impactMetrics"`
}

// Education 一条教育经历记录
type Education struct {
	Degree          string         `json:"degree"`
	FieldOfStudy    string         `json:"fieldOfStudy"`
	InstitutionName string         `json:"institutionName"`
	GPA             *float64       `json:"gpa"`
	StartDate       *string        `json:"startDate"`
	EndDate         *string        `json:"endDate"`
	EducationLevel  EducationLevel `json:"educationLevel"`
}

// Contact 联系方式，每次抽取最多一条，各字段独立取首个匹配
type Contact struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	LinkedinURL *string `json:"linkedinUrl"`
	GithubURL   *string `json:"githubUrl"`
}

// ExtractionResult 一次抽取的完整结果，即 /extract 接口的响应体
type ExtractionResult struct {
	Skills      []Skill      `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Contact     Contact      `json:"contact"`
}
