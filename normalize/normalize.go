// Package normalize 从模型原始输出中恢复字段映射。
// 模型可能返回纯 JSON、围栏代码块，或夹杂解释文字的 JSON。
package normalize

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/tbxark/reportagent/types"
)

// Normalize 依次尝试恢复策略，第一个成功者生效：
//  1. 整串解析为 JSON 对象；
//  2. ```json 围栏块内部；
//  3. 任意围栏块内部（须同时包含 { 和 }）；
//  4. 第一个 { 到最后一个 } 的子串。
//
// 全部失败返回空映射，从不报错——“没有抽取到内容”是合法结果。
func Normalize(raw string) types.FieldMapping {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.FieldMapping{}
	}

	if m, ok := tryParseObject(raw); ok {
		return m
	}
	if inner, ok := fencedBlock(raw, "```json"); ok {
		if m, ok := tryParseObject(inner); ok {
			return m
		}
	}
	if inner, ok := fencedBlock(raw, "```"); ok && strings.Contains(inner, "{") && strings.Contains(inner, "}") {
		if m, ok := tryParseObject(inner); ok {
			return m
		}
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if m, ok := tryParseObject(raw[start : end+1]); ok {
			return m
		}
	}
	return types.FieldMapping{}
}

// fencedBlock 返回第一个以 marker 开头的围栏块内部内容。
func fencedBlock(raw, marker string) (string, bool) {
	_, after, found := strings.Cut(raw, marker)
	if !found {
		return "", false
	}
	inner, _, found := strings.Cut(after, "```")
	if !found {
		return "", false
	}
	return strings.TrimSpace(inner), true
}

// tryParseObject 解析 JSON 对象并把值收敛为字符串：
// 字符串保留，数字和布尔转为字符串形式，null、对象、数组丢弃。
func tryParseObject(s string) (types.FieldMapping, bool) {
	var obj map[string]any
	if err := sonic.UnmarshalString(s, &obj); err != nil {
		return nil, false
	}
	mapping := make(types.FieldMapping, len(obj))
	for key, value := range obj {
		switch v := value.(type) {
		case string:
			mapping[key] = v
		case float64:
			mapping[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			mapping[key] = strconv.FormatBool(v)
		}
	}
	return mapping, true
}
