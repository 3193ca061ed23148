// Package agent 驱动表单填写对话：会话状态、轮次编排与回复生成。
package agent

import (
	"sync"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/tbxark/reportagent/form"
	"github.com/tbxark/reportagent/timeinfo"
	"github.com/tbxark/reportagent/types"
)

// Session 一次报表填写会话。表单状态、历史和阶段都归它所有，
// 只有编排器（Flow）可以修改；展示层通过 Snapshot/History 读取副本。
type Session struct {
	mu sync.Mutex

	id       string
	formType types.FormType
	schema   *types.FormSchema
	state    form.State
	history  []*schema.Message
	phase    types.Phase
	timeInfo timeinfo.Info

	// ordinal 标记最新一轮用户输入；在途抽取结果回来时
	// 如果编号不再匹配，说明已被新输入取代，结果作废。
	ordinal int
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) FormType() types.FormType {
	return s.formType
}

func (s *Session) Schema() *types.FormSchema {
	return s.schema
}

func (s *Session) Phase() types.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Completed() bool {
	return s.Phase() == types.PhaseCompleted
}

// Snapshot 返回当前表单状态的副本，供展示层并发读取。
func (s *Session) Snapshot() form.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// History 返回聊天历史的副本。历史只追加，消息下标即轮次顺序。
func (s *Session) History() []*schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*schema.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) TimeInfo() timeinfo.Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeInfo
}

func newSession(formType types.FormType, schema *types.FormSchema) *Session {
	return &Session{
		id:       uuid.NewString(),
		formType: formType,
		schema:   schema,
		state:    form.NewState(schema),
		phase:    types.PhaseCollecting,
	}
}
