package extract

import (
	"context"
	"fmt"
)

// FailbackExtractor 依次尝试多个抽取策略，返回第一个成功的结果。
// 典型用法是模型策略在前、本地降级在后：模型失败只影响当轮，
// 下一轮仍会先走模型路径。
type FailbackExtractor struct {
	extractors []Extractor
}

func NewFailbackExtractor(extractors ...Extractor) *FailbackExtractor {
	return &FailbackExtractor{extractors: extractors}
}

func (e *FailbackExtractor) Extract(ctx context.Context, req *Request) (string, error) {
	var lastErr error
	for _, extractor := range e.extractors {
		raw, err := extractor.Extract(ctx, req)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("all extractors failed: %w", lastErr)
}
