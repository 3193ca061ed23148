// Package speech 把语音输入转成文本，供对话流程作为普通输入消费。
package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/tbxark/reportagent/types"
)

// Transcriber 把一段 WAV 音频转写为文本。
type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte) (string, error)
}

// transcriptionService 是对转写接口的最小依赖，便于测试替换。
type transcriptionService interface {
	New(ctx context.Context, body openai.AudioTranscriptionNewParams, opts ...option.RequestOption) (*openai.Transcription, error)
}

type OpenAITranscriber struct {
	service transcriptionService
	model   openai.AudioModel
}

func NewOpenAITranscriber(apiKey string, opts ...option.RequestOption) *OpenAITranscriber {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAITranscriber{
		service: &client.Audio.Transcriptions,
		model:   openai.AudioModelWhisper1,
	}
}

// Transcribe 把音频落到临时文件后提交转写。无论成功与否临时文件都会被删除。
func (t *OpenAITranscriber) Transcribe(ctx context.Context, wav []byte) (string, error) {
	if len(wav) == 0 {
		return "", fmt.Errorf("%w: 音频为空", types.ErrTranscriptionFailure)
	}

	tmp, err := os.CreateTemp("", "audio_*.wav")
	if err != nil {
		return "", fmt.Errorf("%w: 创建临时文件失败: %w", types.ErrTranscriptionFailure, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(wav); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: 写入临时文件失败: %w", types.ErrTranscriptionFailure, err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", types.ErrTranscriptionFailure, err)
	}
	defer tmp.Close()

	resp, err := t.service.New(ctx, openai.AudioTranscriptionNewParams{
		File:  tmp,
		Model: t.model,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrTranscriptionFailure, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: 转写结果为空", types.ErrTranscriptionFailure)
	}
	return text, nil
}
