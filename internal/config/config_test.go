package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFromFile 验证YAML配置文件能否被正确加载
func TestLoadConfigFromFile(t *testing.T) {
	yamlContent := `
server:
  address: ":5001"
annotator:
  server_url: "http://annotator.local:8090"
  timeout_seconds: 10
logger:
  level: "debug"
  format: "json"
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	config, err := LoadConfig(configPath)
	require.NoError(t, err, "加载配置不应返回错误")
	require.NotNil(t, config, "配置对象不应为 nil")

	assert.Equal(t, ":5001", config.Server.Address)
	assert.Equal(t, "http://annotator.local:8090", config.Annotator.ServerURL)
	assert.Equal(t, 10, config.Annotator.TimeoutSeconds)
	assert.Equal(t, "debug", config.Logger.Level)
	assert.Equal(t, "json", config.Logger.Format)
}

// TestLoadConfigDefaults 验证缺省字段会被补上默认值
func TestLoadConfigDefaults(t *testing.T) {
	yamlContent := `
logger:
  level: "warn"
`
	tmpDir, err := os.MkdirTemp("", "config-test-defaults")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":5000", config.Server.Address, "缺省监听地址应为:5000")
	assert.Equal(t, "http://localhost:8090", config.Annotator.ServerURL)
	assert.Equal(t, 30, config.Annotator.TimeoutSeconds)
	assert.Equal(t, "warn", config.Logger.Level, "已提供的字段不应被默认值覆盖")
}

// TestLoadConfigInTestEnvironment 验证测试环境下找不到配置文件时返回默认配置而非报错
func TestLoadConfigInTestEnvironment(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err, "测试环境下应返回默认配置而不是错误")
	require.NotNil(t, config)
	assert.Equal(t, ":5000", config.Server.Address)
}

// TestAnnotatorURLFromEnv 验证环境变量可以覆盖标注服务地址
func TestAnnotatorURLFromEnv(t *testing.T) {
	t.Setenv("ANNOTATOR_URL", "http://override:9999")

	yamlContent := `
annotator:
  server_url: "http://original:8090"
`
	tmpDir, err := os.MkdirTemp("", "config-test-env")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "http://override:9999", config.Annotator.ServerURL, "环境变量应覆盖配置文件中的地址")
}
