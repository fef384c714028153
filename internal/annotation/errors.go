package annotation

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrServerUnreachable = errors.New("标注服务不可达")
	ErrBadStatus         = errors.New("标注服务返回非200状态")
	ErrDecodeFailed      = errors.New("解析标注服务响应失败")
)

// AnnotateError 包含详细错误信息的自定义错误
type AnnotateError struct {
	Op         string
	StatusCode int
	BaseErr    error
	Detail     string
}

func (e *AnnotateError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (操作:%s, 状态码:%d): %s", e.BaseErr, e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s): %s", e.BaseErr, e.Op, e.Detail)
}

func (e *AnnotateError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *AnnotateError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}
