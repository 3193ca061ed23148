package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"github.com/tbxark/reportagent/agent"
	"github.com/tbxark/reportagent/extract"
	"github.com/tbxark/reportagent/form"
	"github.com/tbxark/reportagent/types"
)

// buildExtractor 有凭据时走模型抽取、本地规则兜底；无凭据时整个会话只用本地规则。
func buildExtractor(ctx context.Context, config *Config) (extract.Extractor, error) {
	if config.APIKey == "" {
		slog.Warn("no api key configured, falling back to local keyword extraction")
		return extract.NewLocalExtractor(), nil
	}
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  config.APIKey,
		Model:   config.Model,
		BaseURL: config.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return extract.NewFailbackExtractor(
		extract.NewModelExtractor(cm),
		extract.NewLocalExtractor(),
	), nil
}

func runChat(ctx context.Context, config *Config) error {
	extractor, err := buildExtractor(ctx, config)
	if err != nil {
		return err
	}
	flow := agent.NewFlow(extractor, agent.WithOutputDir(config.OutputDir))
	store := agent.NewMemorySessionStore()
	ctx = agent.WithSessionKey(ctx, "cli")
	reader := bufio.NewReader(os.Stdin)

	for {
		formType, ok := selectFormType(reader)
		if !ok {
			fmt.Println("再见！")
			return nil
		}
		sess, resp, err := flow.Start(formType)
		if err != nil {
			return err
		}
		if err := store.Save(ctx, sess); err != nil {
			return err
		}
		fmt.Printf("\n助手: %s\n======\n", resp.Message)

		if err := collectLoop(ctx, flow, sess, reader); err != nil {
			return err
		}
		_ = store.Delete(ctx)
	}
}

func selectFormType(reader *bufio.Reader) (types.FormType, bool) {
	all := form.AllFormTypes()
	fmt.Println("\n请选择要填写的表单类型：")
	for i, formType := range all {
		fmt.Printf("  %d. %s\n", i+1, formType)
	}
	fmt.Println("输入编号或名称开始，输入 退出 结束。")
	for {
		fmt.Print("选择: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}
		input = strings.TrimSpace(input)
		switch input {
		case "退出", "exit", "quit":
			return "", false
		}
		for i, formType := range all {
			if input == fmt.Sprintf("%d", i+1) || input == string(formType) {
				return formType, true
			}
		}
		fmt.Println("无法识别，请重新输入。")
	}
}

// collectLoop 收集阶段的 REPL。提交、重置或输入结束时返回。
func collectLoop(ctx context.Context, flow *agent.Flow, sess *agent.Session, reader *bufio.Reader) error {
	for {
		fmt.Print("用户: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("输入错误或已结束。退出。")
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch input {
		case "提交":
			if !confirmSubmit(sess, reader) {
				fmt.Println("已取消提交，可以继续补充内容。")
				continue
			}
			resp, sErr := flow.Submit(sess)
			if sErr != nil {
				slog.Error("submit failed", "error", sErr)
				fmt.Println("提交失败，请稍后重试。")
				continue
			}
			fmt.Printf("\n助手: %s\n报告已保存到 %s\n======\n", resp.Message, resp.DocumentPath)
			return nil
		case "重置":
			resp := flow.Reset(sess)
			fmt.Printf("\n助手: %s\n======\n", resp.Message)
			return nil
		case "退出":
			fmt.Println("再见！")
			os.Exit(0)
		}

		resp, tErr := flow.Turn(ctx, sess, input)
		if tErr != nil {
			slog.Error("turn failed", "error", tErr)
			continue
		}
		fmt.Printf("\n助手: %s\n", resp.Message)
		fmt.Println(types.FormatFieldTable(sess.Schema(), resp.State))
		fmt.Println("======")
	}
}

// confirmSubmit 有缺失字段时先警示再要求确认。
func confirmSubmit(sess *agent.Session, reader *bufio.Reader) bool {
	missing := form.MissingFields(sess.Schema(), sess.Snapshot())
	if len(missing) == 0 {
		return true
	}
	fmt.Printf("以下字段尚未填写：\n- %s\n确认提交吗？(y/n): ", strings.Join(missing, "\n- "))
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes" || input == "是"
}
