package types

import "errors"

var (
	// ErrUnknownFormType 表单类型不在闭集内，属于配置错误，不重试。
	ErrUnknownFormType = errors.New("unknown form type")

	// ErrModelUnavailable 模型调用在重试耗尽后仍失败或内容为空。
	// 调用方应降级到本地抽取策略，而不是中断会话。
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrTranscriptionFailure 语音识别失败或结果为空，不影响表单状态。
	ErrTranscriptionFailure = errors.New("transcription failed")

	// ErrTurnSuperseded 本轮抽取结果返回时已有更新的用户输入，结果被丢弃。
	ErrTurnSuperseded = errors.New("turn superseded by newer input")

	// ErrSessionCompleted 会话已提交或重置，需要新建会话才能继续。
	ErrSessionCompleted = errors.New("session already completed")
)
