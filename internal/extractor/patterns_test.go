package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"go", "Go"},
		{"SENIOR", "Senior"},
		{"spring boot", "Spring Boot"},
		{"node.js", "Node.Js"},
		{"c++", "C++"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, titleCase(tt.input), "输入 %q 的标题化结果不符", tt.input)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5), "不超限的字符串应原样返回")
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	// 按字符而非字节截断
	assert.Equal(t, "后端工程", truncate("后端工程师简历", 4))
}
