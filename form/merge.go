package form

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/tbxark/reportagent/types"
)

type operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Merge 把抽取结果合并进表单状态。规则：
//   - 按 schema 字段顺序处理，非空的新值覆盖旧值，空值从不覆盖；
//   - 派生字段完全跳过，只有时间上下文可以写它们；
//   - 不在 schema 内的字段被忽略。
//
// 合并是纯函数且幂等：同一抽取结果重复应用，状态不变。
func Merge(schema *types.FormSchema, state State, extracted types.FieldMapping) (State, error) {
	ops := make([]operation, 0, len(extracted))
	for _, field := range schema.Fields {
		if field.Derived {
			continue
		}
		value, ok := extracted[field.Name]
		if !ok || value == "" {
			continue
		}
		ops = append(ops, operation{
			Op:    "replace",
			Path:  "/" + escapeJSONPointer(field.Name),
			Value: value,
		})
	}
	if len(ops) == 0 {
		return state.Clone(), nil
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	patchJSON, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patch operations: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patch: %w", err)
	}
	mergedJSON, err := patch.Apply(stateJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to apply patch: %w", err)
	}

	var merged State
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merged state: %w", err)
	}
	return merged, nil
}

func escapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
