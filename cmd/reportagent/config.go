package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
)

type Config struct {
	APIKey    string `json:"api_key"`
	BaseURL   string `json:"base_url"`
	Model     string `json:"model"`
	OutputDir string `json:"output_dir"`
}

// loadConfig 读取 JSON 配置，.env 与环境变量中的 OPENAI_API_KEY 优先。
// 配置文件不存在不算错误，此时走无凭据的本地降级模式。
func loadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		Model:     "gpt-3.5-turbo",
		OutputDir: "reports",
	}
	file, err := os.ReadFile(path)
	if err == nil {
		if uErr := sonic.Unmarshal(file, conf); uErr != nil {
			return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, uErr)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		conf.APIKey = key
	}
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		conf.BaseURL = base
	}
	return conf, nil
}
