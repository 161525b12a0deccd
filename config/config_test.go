package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8080
piper:
  bin_path: /usr/local/bin/piper
  model_path: /models/zh_CN-huayan-medium.onnx
  timeout_seconds: 10
  sample_rate: 16000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server 配置错误: %+v", cfg.Server)
	}
	if cfg.Piper.BinPath != "/usr/local/bin/piper" {
		t.Errorf("bin_path 错误: %s", cfg.Piper.BinPath)
	}
	if cfg.Piper.ModelPath != "/models/zh_CN-huayan-medium.onnx" {
		t.Errorf("model_path 错误: %s", cfg.Piper.ModelPath)
	}
	if cfg.Piper.Timeout() != 10*time.Second {
		t.Errorf("timeout 错误: %v", cfg.Piper.Timeout())
	}
	if cfg.Piper.SampleRate != 16000 {
		t.Errorf("sample_rate 错误: %d", cfg.Piper.SampleRate)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// 只给 model_path，其余字段全部走缺省值
	path := writeConfig(t, `
piper:
  model_path: /data/en_US-lessac-medium.onnx
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 5000 {
		t.Errorf("server 缺省值错误: %+v", cfg.Server)
	}
	if cfg.Piper.BinPath != "piper" {
		t.Errorf("bin_path 缺省值错误: %s", cfg.Piper.BinPath)
	}
	if cfg.Piper.Timeout() != 30*time.Second {
		t.Errorf("timeout 缺省值错误: %v", cfg.Piper.Timeout())
	}
	if cfg.Piper.SampleRate != 22050 {
		t.Errorf("sample_rate 缺省值错误: %d", cfg.Piper.SampleRate)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("文件不存在应报错")
	}
}
