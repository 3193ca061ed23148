package agent

import (
	"strconv"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestKeepLastNTrimmer(t *testing.T) {
	history := make([]*schema.Message, 5)
	for i := range history {
		history[i] = schema.UserMessage(strconv.Itoa(i))
	}

	got := KeepLastNTrimmer{N: 3}.Trim(history)
	if len(got) != 3 {
		t.Fatalf("应保留 3 条消息: %d", len(got))
	}
	if got[0].Content != "2" || got[2].Content != "4" {
		t.Errorf("应保留最近的消息: %s..%s", got[0].Content, got[2].Content)
	}

	if got := (KeepLastNTrimmer{N: 10}).Trim(history); len(got) != 5 {
		t.Errorf("N 大于历史长度时应全部保留: %d", len(got))
	}
	if got := (KeepLastNTrimmer{N: 0}).Trim(history); got != nil {
		t.Errorf("N 为 0 时不应传历史: %v", got)
	}
}
