package annotation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// HTTPAnnotator 基于HTTP边车服务的NER标注器
// 边车进程加载spaCy模型并暴露 /annotate 接口，本结构只做请求转发
type HTTPAnnotator struct {
	// 标注服务地址，例如 http://localhost:8090
	ServerURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
	// 日志记录
	logger *log.Logger
}

// AnnotatorOption 定义配置选项函数
type AnnotatorOption func(*HTTPAnnotator)

// WithTimeout 配置HTTP客户端超时时间
func WithTimeout(timeout time.Duration) AnnotatorOption {
	return func(a *HTTPAnnotator) {
		a.Client.Timeout = timeout
	}
}

// WithAnnotatorLogger 配置自定义日志记录器
func WithAnnotatorLogger(logger *log.Logger) AnnotatorOption {
	return func(a *HTTPAnnotator) {
		a.logger = logger
	}
}

// 确保HTTPAnnotator实现了Annotator接口
var _ Annotator = (*HTTPAnnotator)(nil)

// NewHTTPAnnotator 创建一个新的HTTP标注器
func NewHTTPAnnotator(serverURL string, options ...AnnotatorOption) *HTTPAnnotator {
	annotator := &HTTPAnnotator{
		ServerURL: serverURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.New(os.Stderr, "[Annotator] ", log.LstdFlags),
	}

	for _, option := range options {
		option(annotator)
	}

	return annotator
}

// annotateRequest 标注请求体
type annotateRequest struct {
	Text string `json:"text"`
}

// annotateResponse 标注响应体
type annotateResponse struct {
	Entities []Entity `json:"entities"`
}

// Annotate 调用标注服务对文本做NER标注
func (a *HTTPAnnotator) Annotate(ctx context.Context, text string) ([]Entity, error) {
	startTime := time.Now()

	payload, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("序列化标注请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.ServerURL+"/annotate", bytes.NewReader(payload))
	if err != nil {
		return nil, &AnnotateError{Op: "annotate", BaseErr: ErrServerUnreachable, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, &AnnotateError{Op: "annotate", BaseErr: ErrServerUnreachable, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &AnnotateError{
			Op:         "annotate",
			StatusCode: resp.StatusCode,
			BaseErr:    ErrBadStatus,
			Detail:     string(body),
		}
	}

	var result annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &AnnotateError{Op: "annotate", BaseErr: ErrDecodeFailed, Detail: err.Error()}
	}

	a.logger.Printf("标注完成: %d 个字符, %d 个实体 (用时 %.2f秒)",
		len(text), len(result.Entities), time.Since(startTime).Seconds())
	return result.Entities, nil
}

// Ping 启动时探测标注服务是否可用
// 用一句短文本做一次完整标注，失败则视为标注能力未就绪
func (a *HTTPAnnotator) Ping(ctx context.Context) error {
	_, err := a.Annotate(ctx, "ping")
	return err
}
