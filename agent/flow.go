package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/tbxark/reportagent/extract"
	"github.com/tbxark/reportagent/form"
	"github.com/tbxark/reportagent/normalize"
	"github.com/tbxark/reportagent/timeinfo"
	"github.com/tbxark/reportagent/types"
)

// Response 一轮对话的结果。State 是副本，可以安全展示。
type Response struct {
	Message      string
	Phase        types.Phase
	State        form.State
	Missing      []string
	Completed    bool
	DocumentPath string
}

// Flow 对话编排器：每轮依次执行 时间上下文刷新 → 抽取 → 归一化 → 合并 →
// 完成度计算 → 回复生成。会话状态只在这里被修改。
type Flow struct {
	extractor extract.Extractor
	trimmer   Trimmer
	clock     func() time.Time
	outputDir string
}

type Option func(*Flow)

// WithClock 替换时钟，测试用。
func WithClock(clock func() time.Time) Option {
	return func(f *Flow) {
		f.clock = clock
	}
}

func WithOutputDir(dir string) Option {
	return func(f *Flow) {
		f.outputDir = dir
	}
}

func WithHistoryTrimmer(trimmer Trimmer) Option {
	return func(f *Flow) {
		f.trimmer = trimmer
	}
}

func NewFlow(extractor extract.Extractor, opts ...Option) *Flow {
	flow := &Flow{
		extractor: extractor,
		trimmer:   KeepLastNTrimmer{N: 20},
		clock:     time.Now,
		outputDir: "reports",
	}
	for _, opt := range opts {
		opt(flow)
	}
	return flow
}

// Start 选定表单类型并创建会话：状态按 schema 初始化为空，
// 派生字段立即由时间上下文填入，阶段进入 Collecting。
func (f *Flow) Start(formType types.FormType) (*Session, *Response, error) {
	formSchema, err := form.SchemaFor(formType)
	if err != nil {
		return nil, nil, err
	}
	sess := newSession(formType, formSchema)
	info := timeinfo.Collect(f.clock())
	sess.timeInfo = info
	sess.state = form.ApplyDerived(formSchema, sess.state, timeinfo.DerivedValues(formType, info))

	welcome := welcomeMessage(formType)
	sess.history = append(sess.history, schema.AssistantMessage(welcome, nil))

	return sess, &Response{
		Message: welcome,
		Phase:   sess.phase,
		State:   sess.state.Clone(),
		Missing: form.MissingFields(formSchema, sess.state),
	}, nil
}

// Turn 处理一轮用户输入。抽取在锁外执行；结果回来时若本轮已被
// 更新的输入取代，返回 ErrTurnSuperseded 且不合并、不追加回复。
// 收集阶段的任何失败都降级为提示重试，不会终止会话。
func (f *Flow) Turn(ctx context.Context, sess *Session, utterance string) (*Response, error) {
	sess.mu.Lock()
	if sess.phase == types.PhaseCompleted {
		sess.mu.Unlock()
		return nil, types.ErrSessionCompleted
	}
	sess.ordinal++
	ordinal := sess.ordinal

	// 派生字段每轮刷新，权威值直接覆盖
	info := timeinfo.Collect(f.clock())
	sess.timeInfo = info
	sess.state = form.ApplyDerived(sess.schema, sess.state, timeinfo.DerivedValues(sess.formType, info))
	sess.history = append(sess.history, schema.UserMessage(utterance))

	req := &extract.Request{
		Schema:    sess.schema,
		State:     sess.state.Clone(),
		Time:      info,
		Utterance: utterance,
		History:   f.trimmer.Trim(sess.history),
	}
	sess.mu.Unlock()

	extracted := types.FieldMapping{}
	raw, err := f.extractor.Extract(ctx, req)
	if err != nil {
		// 抽取不可用按“本轮无抽取”处理
		slog.Warn("extraction unavailable for this turn", "session", sess.id, "error", err)
	} else {
		extracted = normalize.Normalize(raw)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if ordinal != sess.ordinal || sess.phase == types.PhaseCompleted {
		slog.Debug("discarding stale extraction", "session", sess.id, "ordinal", ordinal)
		return nil, types.ErrTurnSuperseded
	}

	captured := false
	if len(extracted) > 0 {
		merged, mErr := form.Merge(sess.schema, sess.state, extracted)
		if mErr != nil {
			slog.Warn("merge failed, state unchanged", "session", sess.id, "error", mErr)
		} else {
			captured = !merged.Equal(sess.state)
			sess.state = merged
		}
	}

	missing := form.MissingFields(sess.schema, sess.state)
	reply := collectingReply(captured, missing)
	sess.history = append(sess.history, schema.AssistantMessage(reply, nil))

	return &Response{
		Message: reply,
		Phase:   sess.phase,
		State:   sess.state.Clone(),
		Missing: missing,
	}, nil
}

// Submit 显式提交。允许部分提交，缺失字段在回复中警示。
// 写文档失败时会话保持 Collecting，可重试。提交后会话终止。
func (f *Flow) Submit(sess *Session) (*Response, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.phase == types.PhaseCompleted {
		return nil, types.ErrSessionCompleted
	}

	missing := form.MissingFields(sess.schema, sess.state)
	path, err := form.WriteDocument(f.outputDir, sess.schema, sess.state, f.clock())
	if err != nil {
		return nil, err
	}

	sess.phase = types.PhaseCompleted
	sess.ordinal++ // 在途抽取全部作废
	reply := submitReply(sess.schema.Title, missing)
	sess.history = append(sess.history, schema.AssistantMessage(reply, nil))
	slog.Info("form submitted", "session", sess.id, "form", sess.formType, "path", path)

	return &Response{
		Message:      reply,
		Phase:        sess.phase,
		State:        sess.state.Clone(),
		Missing:      missing,
		Completed:    true,
		DocumentPath: path,
	}, nil
}

// Reset 显式放弃会话。状态被丢弃，会话进入终态，需要新建会话继续。
func (f *Flow) Reset(sess *Session) *Response {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.phase = types.PhaseCompleted
	sess.ordinal++
	sess.state = form.NewState(sess.schema)
	sess.history = append(sess.history, schema.AssistantMessage(resetReply, nil))
	return &Response{
		Message:   resetReply,
		Phase:     sess.phase,
		State:     sess.state.Clone(),
		Completed: true,
	}
}
