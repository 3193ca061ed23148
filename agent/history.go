package agent

import "github.com/cloudwego/eino/schema"

// Trimmer 控制传给抽取器的历史长度，会话内保存的历史不受影响。
type Trimmer interface {
	Trim(history []*schema.Message) []*schema.Message
}

// KeepLastNTrimmer 保留最近 N 条消息。N <= 0 时不传历史。
type KeepLastNTrimmer struct {
	N int
}

func (t KeepLastNTrimmer) Trim(history []*schema.Message) []*schema.Message {
	if t.N <= 0 {
		return nil
	}
	if len(history) <= t.N {
		return history
	}
	return history[len(history)-t.N:]
}
