package types

// FormType 报表类型，闭集：日报、周报、年报
type FormType string

const (
	FormDaily  FormType = "日报"
	FormWeekly FormType = "周报"
	FormAnnual FormType = "年报"
)

type Phase string

const (
	PhaseSelecting  Phase = "selecting"
	PhaseCollecting Phase = "collecting"
	PhaseCompleted  Phase = "completed"
)

// FieldSpec 表单字段定义。Derived 字段的值由时间上下文计算，抽取器不可写入。
type FieldSpec struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Derived     bool   `json:"derived,omitempty"`
}

// FormSchema 表单结构，字段顺序即展示顺序，也是缺失字段列举的顺序。
type FormSchema struct {
	Type        FormType    `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldSpec `json:"fields"`
}

func (s *FormSchema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func (s *FormSchema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

func (s *FormSchema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// FieldMapping 是组件间传递抽取结果的契约：字段名到字符串值。
// 合并边界会按 FormSchema 校验，未知字段被忽略。
type FieldMapping map[string]string
