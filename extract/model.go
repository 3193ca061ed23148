package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/reportagent/form"
	"github.com/tbxark/reportagent/types"
)

const extractSystemPrompt = `你是一个专业的表单填写助手。你的任务是解析用户输入，并根据表单结构生成JSON格式的表单内容。
仅返回JSON格式数据，不要有其他解释或说明。确保所有字段都包含在JSON中，即使某些字段没有值也要用空字符串占位。
用户可能会发送一些错别字，你需要自己鉴别做适当的修改和语义调整。`

// ModelExtractor 基于大模型的抽取策略。
type ModelExtractor struct {
	chatModel   model.BaseChatModel
	policy      Policy
	temperature float32
}

type ModelOption func(*ModelExtractor)

func WithPolicy(policy Policy) ModelOption {
	return func(e *ModelExtractor) {
		e.policy = policy
	}
}

func WithTemperature(temperature float32) ModelOption {
	return func(e *ModelExtractor) {
		e.temperature = temperature
	}
}

func NewModelExtractor(chatModel model.BaseChatModel, opts ...ModelOption) *ModelExtractor {
	extractor := &ModelExtractor{
		chatModel:   chatModel,
		policy:      DefaultPolicy,
		temperature: 0.2,
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor
}

func (e *ModelExtractor) Extract(ctx context.Context, req *Request) (string, error) {
	messages, err := buildExtractPrompt(req)
	if err != nil {
		return "", fmt.Errorf("build extract prompt: %w", err)
	}
	return e.policy.Do(ctx, func(ctx context.Context) (string, error) {
		resp, err := e.chatModel.Generate(ctx, messages, model.WithTemperature(e.temperature))
		if err != nil {
			return "", fmt.Errorf("LLM call failed: %w", err)
		}
		return resp.Content, nil
	})
}

func buildExtractPrompt(req *Request) ([]*schema.Message, error) {
	stateJSON, err := sonic.MarshalString(req.State)
	if err != nil {
		return nil, fmt.Errorf("marshal form state: %w", err)
	}
	timeJSON, err := sonic.MarshalString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("marshal time info: %w", err)
	}

	sections := []string{
		fmt.Sprintf("# 当前表单类型:\n%s（%s）", req.Schema.Title, req.Schema.Description),
		fmt.Sprintf("# 当前时间信息:\n```json\n%s\n```", timeJSON),
		fmt.Sprintf("# 表单字段:\n%s", types.FormatFieldTable(req.Schema, req.State)),
		fmt.Sprintf("# 当前已填写内容:\n```json\n%s\n```", stateJSON),
	}
	if missing := types.FormatMissingFieldsSection(req.Schema, form.MissingFields(req.Schema, req.State)); missing != "" {
		sections = append(sections, missing)
	}
	sections = append(sections,
		fmt.Sprintf("# 用户输入:\n%s", req.Utterance),
		"请解析用户输入并更新表单内容。只返回一个包含所有字段的JSON对象，未提及的字段保持原值，未知字段使用空字符串。",
	)

	messages := []*schema.Message{schema.SystemMessage(extractSystemPrompt)}
	messages = append(messages, req.History...)
	messages = append(messages, schema.UserMessage(strings.Join(sections, "\n\n")))
	return messages, nil
}
