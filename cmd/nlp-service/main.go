package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/api/handler"
	"resume-nlp-go/internal/api/router"
	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/extractor"
	appCoreLogger "resume-nlp-go/internal/logger"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

var (
	version     = "1.0.0"       //nolint:gochecknoglobals
	serviceName = "nlp-service" //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	// 初始化NER标注器并做启动探测。
	// 标注能力不可用时服务照常启动，但所有抽取请求返回固定错误
	annotator := annotation.NewHTTPAnnotator(
		cfg.Annotator.ServerURL,
		annotation.WithTimeout(time.Duration(cfg.Annotator.TimeoutSeconds)*time.Second),
	)

	var resumeExtractor *extractor.ResumeExtractor
	probeCtx, cancelProbe := context.WithTimeout(context.Background(), 10*time.Second)
	if err := annotator.Ping(probeCtx); err != nil {
		appCoreLogger.Error().Err(err).
			Str("annotator_url", cfg.Annotator.ServerURL).
			Msg("NER标注服务初始化探测失败，所有抽取请求将被拒绝")
	} else {
		resumeExtractor = extractor.NewResumeExtractor(annotator)
		glog.Info("NER标注服务探测成功，抽取流水线初始化完成")
	}
	cancelProbe()

	extractHandler := handler.NewExtractHandler(cfg, resumeExtractor)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, extractHandler)
	glog.Info("HTTP路由注册成功")
	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化日志系统并接管Hertz的框架日志
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	appCoreLogger.Logger = appCoreLogger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
