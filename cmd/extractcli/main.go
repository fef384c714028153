// extractcli 是一个离线抽取工具：读取一份简历文本文件，
// 执行与HTTP服务相同的抽取流水线，并将结果JSON打印到标准输出。
// 用于调试词表和规则，不经过HTTP层
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"resume-nlp-go/internal/annotation"
	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/extractor"
	appCoreLogger "resume-nlp-go/internal/logger"

	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath  string
		filePath    string
		noAnnotator bool
	)
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.StringVarP(&filePath, "file", "f", "", "Path to resume text file")
	pflag.BoolVar(&noAnnotator, "no-annotator", false, "Run without the NER annotator (entity fields degrade to empty)")
	pflag.Parse()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "用法: extractcli -f <resume.txt> [-c config.yaml] [--no-annotator]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	raw, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取简历文件失败: %v\n", err)
		os.Exit(1)
	}

	// NER标注器可选：关闭后实体相关字段全部降级为空值
	var annotator annotation.Annotator
	if !noAnnotator {
		httpAnnotator := annotation.NewHTTPAnnotator(
			cfg.Annotator.ServerURL,
			annotation.WithTimeout(time.Duration(cfg.Annotator.TimeoutSeconds)*time.Second),
		)
		probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := httpAnnotator.Ping(probeCtx)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "NER标注服务不可用: %v\n提示: 使用 --no-annotator 以降级模式运行\n", err)
			os.Exit(1)
		}
		annotator = httpAnnotator
	}

	resumeExtractor := extractor.NewResumeExtractor(annotator)
	result := resumeExtractor.ExtractAll(context.Background(), string(raw))

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "序列化结果失败: %v\n", err)
		os.Exit(1)
	}
}
