package main

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	rootCmd := &cobra.Command{
		Use:          "reportagent",
		Short:        "对话式工作报告填写助手",
		Long:         "用自然语言描述你的工作，助手会帮你整理成结构化的日报、周报或年报。",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetLogLoggerLevel(slog.LevelInfo)
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), config)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json", "配置文件路径")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("start app: %v", err)
	}
}
