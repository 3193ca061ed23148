// Package extract 提供两种可互换的字段抽取策略：
// 模型抽取（构造提示词调用大模型）和本地关键词触发的降级抽取。
// 两者共享同一契约，输出交给 normalize 恢复为字段映射。
package extract

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/reportagent/form"
	"github.com/tbxark/reportagent/timeinfo"
	"github.com/tbxark/reportagent/types"
)

type Request struct {
	Schema    *types.FormSchema
	State     form.State
	Time      timeinfo.Info
	Utterance string
	History   []*schema.Message
}

// Extractor 抽取一轮用户输入，返回原始文本（通常是 JSON，也可能夹杂说明文字）。
type Extractor interface {
	Extract(ctx context.Context, req *Request) (string, error)
}
