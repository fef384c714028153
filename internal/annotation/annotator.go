package annotation

import "context"

// EntityLabel NER实体标签
// 未知标签由各抽取器直接忽略，不视为错误
type EntityLabel string

const (
	LabelPerson  EntityLabel = "PERSON"
	LabelOrg     EntityLabel = "ORG"
	LabelProduct EntityLabel = "PRODUCT"
	LabelGPE     EntityLabel = "GPE"
	LabelDate    EntityLabel = "DATE"
)

// Entity 一个带标签的实体片段，由NER标注器产出，抽取器只读不改
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// Annotator NER标注能力接口
// 实现必须支持并发的只读推理调用，单次调用不得修改任何共享状态
type Annotator interface {
	// Annotate 对文本做NER标注，返回实体序列
	Annotate(ctx context.Context, text string) ([]Entity, error)
}
