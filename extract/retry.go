package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tbxark/reportagent/types"
)

// Policy 显式的有界重试策略。空响应视为失败并重试；
// 尝试耗尽后返回 ErrModelUnavailable，由调用方降级，不会向上抛异常。
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

var DefaultPolicy = Policy{MaxAttempts: 3, Delay: time.Second}

func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) (string, error)) (string, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 && p.Delay > 0 {
			timer := time.NewTimer(p.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return "", fmt.Errorf("%w: %w", types.ErrModelUnavailable, ctx.Err())
			case <-timer.C:
			}
		}
		out, err := fn(ctx)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err == nil {
			err = errors.New("empty response content")
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w after %d attempts: %w", types.ErrModelUnavailable, attempts, lastErr)
}
