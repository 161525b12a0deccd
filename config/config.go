package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Piper  PiperConfig  `mapstructure:"piper"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type PiperConfig struct {
	BinPath        string `mapstructure:"bin_path"`
	ModelPath      string `mapstructure:"model_path"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	SampleRate     int    `mapstructure:"sample_rate"`
}

// Timeout 子进程执行的最长时间
func (p PiperConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// LoadConfig 解析配置文件
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %v", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %v", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults 填充缺省值，配置文件里只写需要覆盖的字段即可
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Piper.BinPath == "" {
		c.Piper.BinPath = "piper"
	}
	if c.Piper.ModelPath == "" {
		c.Piper.ModelPath = "/data/en_US-lessac-medium.onnx"
	}
	if c.Piper.TimeoutSeconds == 0 {
		c.Piper.TimeoutSeconds = 30
	}
	if c.Piper.SampleRate == 0 {
		c.Piper.SampleRate = 22050
	}
}
