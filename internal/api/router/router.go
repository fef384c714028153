package router

import (
	"context"

	"resume-nlp-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
// 路由直接挂在根路径下，与原服务的接口契约保持一致
func RegisterRoutes(h *server.Hertz, extractHandler *handler.ExtractHandler) {
	// 健康检查
	h.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"status":  "healthy",
			"service": "nlp-service",
		})
	})

	// 简历实体抽取
	h.POST("/extract", extractHandler.HandleExtract)
}
