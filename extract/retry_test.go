package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/tbxark/reportagent/types"
)

func TestPolicyExhaustion(t *testing.T) {
	policy := Policy{MaxAttempts: 3}
	calls := 0
	_, err := policy.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("transport error")
	})
	if !errors.Is(err, types.ErrModelUnavailable) {
		t.Errorf("期望 ErrModelUnavailable，实际为 %v", err)
	}
	if calls != 3 {
		t.Errorf("期望尝试 3 次，实际为 %d", calls)
	}
}

// TestPolicyEmptyContentRetried 空响应视为失败并重试
func TestPolicyEmptyContentRetried(t *testing.T) {
	policy := Policy{MaxAttempts: 2}
	calls := 0
	out, err := policy.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "   ", nil
		}
		return `{"a":"1"}`, nil
	})
	if err != nil {
		t.Fatalf("第二次应成功: %v", err)
	}
	if out != `{"a":"1"}` || calls != 2 {
		t.Errorf("重试行为错误: out=%q calls=%d", out, calls)
	}
}

func TestPolicyFirstSuccess(t *testing.T) {
	policy := Policy{MaxAttempts: 3}
	calls := 0
	out, err := policy.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil || out != "ok" || calls != 1 {
		t.Errorf("首次成功不应重试: out=%q calls=%d err=%v", out, calls, err)
	}
}

func TestPolicyContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	policy := Policy{MaxAttempts: 3, Delay: 1}
	_, err := policy.Do(ctx, func(ctx context.Context) (string, error) {
		return "", errors.New("transport error")
	})
	if !errors.Is(err, types.ErrModelUnavailable) {
		t.Errorf("取消后应返回 ErrModelUnavailable，实际为 %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("错误链应包含 context.Canceled，实际为 %v", err)
	}
}
