package extractor

import (
	"time"

	"github.com/araddon/dateparse"
)

// 模糊解析失败后依次尝试的固定布局，覆盖dateparse不识别的"月份 年份"类写法
var dateLayouts = []string{
	"Jan 2006",
	"Jan. 2006",
	"January 2006",
	"January. 2006",
	"1/2006",
	"2006",
}

// parseFuzzyDate 对单个原始日期串做模糊解析。
// 先交给dateparse，失败后退回固定布局链；全部失败返回false
func parseFuzzyDate(raw string) (time.Time, bool) {
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractDates 从文本中抽取最多2个规范化日期（YYYY-MM-DD）。
// 三个日期模式按固定顺序全部扫描，命中串逐个解析，
// 解析失败的串静默跳过，不中断整体抽取
func ExtractDates(text string) []string {
	dates := make([]string, 0, 2)
	for _, re := range datePatterns {
		for _, raw := range re.FindAllString(text, -1) {
			t, ok := parseFuzzyDate(raw)
			if !ok {
				continue
			}
			dates = append(dates, t.Format("2006-01-02"))
		}
	}
	if len(dates) > 2 {
		dates = dates[:2]
	}
	return dates
}
