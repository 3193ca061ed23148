package form

import "github.com/tbxark/reportagent/types"

// State 表单状态：字段名到字符串值。键集合始终与 FormSchema 的字段名完全一致。
type State map[string]string

// NewState 按表单结构初始化状态，所有字段为空字符串。
func NewState(schema *types.FormSchema) State {
	state := make(State, len(schema.Fields))
	for _, field := range schema.Fields {
		state[field.Name] = ""
	}
	return state
}

func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if other[k] != v {
			return false
		}
	}
	return true
}

// ApplyDerived 将派生字段的值直接写入状态。派生值是权威数据，
// 不走合并规则，每次刷新时间上下文都会覆盖旧值。非派生字段被忽略。
func ApplyDerived(schema *types.FormSchema, state State, values types.FieldMapping) State {
	out := state.Clone()
	for _, field := range schema.Fields {
		if !field.Derived {
			continue
		}
		if v, ok := values[field.Name]; ok {
			out[field.Name] = v
		}
	}
	return out
}
