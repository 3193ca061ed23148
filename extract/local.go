package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/tbxark/reportagent/types"
)

// 降级抽取使用的固定占位值
const (
	PlaceholderWork  = "根据用户输入提取的工作内容"
	PlaceholderIssue = "根据用户输入提取的问题内容"
	PlaceholderPlan  = "根据用户输入提取的计划内容"
)

// LocalExtractor 关键词触发的确定性降级策略，不依赖任何外部服务。
// 触发表是刻意保留的低精度占位实现，保证无凭证时会话依然可用，
// 其输出是尽力而为的猜测，不是对输入的忠实抽取。
type LocalExtractor struct{}

func NewLocalExtractor() *LocalExtractor {
	return &LocalExtractor{}
}

func (e *LocalExtractor) Extract(ctx context.Context, req *Request) (string, error) {
	result := make(types.FieldMapping)
	utterance := req.Utterance

	for _, field := range req.Schema.Fields {
		if field.Derived {
			continue
		}
		name := field.Name
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(name, "姓名") && strings.Contains(utterance, "我是"):
			if token := tokenAfter(utterance, "我是"); token != "" {
				result[name] = token
			}
		case strings.Contains(name, "部门") && strings.Contains(utterance, "部门"):
			if token := tokenAfter(utterance, "部门"); token != "" {
				result[name] = token
			}
		case containsAny(lower, "工作内容", "工作总结", "成果") && containsAny(utterance, "完成", "做了", "工作"):
			result[name] = PlaceholderWork
		case containsAny(lower, "问题", "困难", "挑战") && containsAny(utterance, "问题", "困难", "卡住"):
			result[name] = PlaceholderIssue
		case containsAny(lower, "计划", "目标") && containsAny(utterance, "计划", "准备", "明天"):
			result[name] = PlaceholderPlan
		}
	}

	raw, err := sonic.MarshalString(result)
	if err != nil {
		return "", fmt.Errorf("marshal local extraction: %w", err)
	}
	return raw, nil
}

// tokenAfter 取标记之后的第一个空白分隔词。
func tokenAfter(s, marker string) string {
	_, after, found := strings.Cut(s, marker)
	if !found {
		return ""
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
