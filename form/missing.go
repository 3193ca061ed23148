package form

import "github.com/tbxark/reportagent/types"

// MissingFields 返回所有值为空的非派生字段，按 schema 字段顺序排列。
// 派生字段无论是否有值都不会出现在结果中。
func MissingFields(schema *types.FormSchema, state State) []string {
	missing := make([]string, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		if field.Derived {
			continue
		}
		if state[field.Name] == "" {
			missing = append(missing, field.Name)
		}
	}
	return missing
}

// Complete 所有非派生字段都已填写时为真。
func Complete(schema *types.FormSchema, state State) bool {
	return len(MissingFields(schema, state)) == 0
}
