package handler

import (
	"context"
	"encoding/json"
	"time"

	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/extractor"
	"resume-nlp-go/internal/logger"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
)

// 对外暴露的固定错误文案，是接口契约的一部分
const (
	errNoTextProvided = "No text provided"
	errModelNotLoaded = "NLP model not loaded"
)

// ExtractRequest 抽取请求体
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractHandler 抽取接口处理器
// extractor为nil表示标注能力启动失败，此时所有抽取请求统一拒绝
type ExtractHandler struct {
	cfg       *config.Config
	extractor *extractor.ResumeExtractor
}

// NewExtractHandler 创建一个新的抽取处理器
func NewExtractHandler(cfg *config.Config, resumeExtractor *extractor.ResumeExtractor) *ExtractHandler {
	return &ExtractHandler{
		cfg:       cfg,
		extractor: resumeExtractor,
	}
}

// HandleExtract 处理简历抽取请求
// POST /extract
func (h *ExtractHandler) HandleExtract(ctx context.Context, c *app.RequestContext) {
	if h.extractor == nil {
		c.JSON(consts.StatusInternalServerError, map[string]string{"error": errModelNotLoaded})
		return
	}

	var req ExtractRequest
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil || req.Text == "" {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": errNoTextProvided})
		return
	}

	// 生成请求ID用于日志追踪
	requestID := ""
	if id, err := uuid.NewV7(); err == nil {
		requestID = id.String()
	}

	startTime := time.Now()
	result := h.extractor.ExtractAll(ctx, req.Text)

	logger.Info().
		Str("request_id", requestID).
		Int("chars", len(req.Text)).
		Int("skills", len(result.Skills)).
		Int("experiences", len(result.Experiences)).
		Int("education", len(result.Education)).
		Dur("elapsed", time.Since(startTime)).
		Msg("完成一次简历实体抽取")

	c.JSON(consts.StatusOK, result)
}
