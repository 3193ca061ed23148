package normalize

import (
	"reflect"
	"testing"

	"github.com/tbxark/reportagent/types"
)

func TestNormalizePlainJSON(t *testing.T) {
	got := Normalize(`{"a":"1","b":"2"}`)
	want := types.FieldMapping{"a": "1", "b": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("纯 JSON 解析错误: %v", got)
	}
}

func TestNormalizeFencedJSONWithProse(t *testing.T) {
	raw := "好的，这是解析结果：\n```json\n{\"a\":\"1\",\"b\":\"2\"}\n```\n希望对你有帮助。"
	got := Normalize(raw)
	want := types.FieldMapping{"a": "1", "b": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("围栏 JSON 解析错误: %v", got)
	}
}

func TestNormalizeGenericFence(t *testing.T) {
	raw := "结果如下\n```\n{\"今日工作内容\":\"代码审查\"}\n```"
	got := Normalize(raw)
	if got["今日工作内容"] != "代码审查" {
		t.Errorf("通用围栏解析错误: %v", got)
	}
}

func TestNormalizeBracesInProse(t *testing.T) {
	raw := `根据你的描述，更新内容为 {"工作成果":"解决了3个bug"} ，请确认。`
	got := Normalize(raw)
	if got["工作成果"] != "解决了3个bug" {
		t.Errorf("大括号截取解析错误: %v", got)
	}
}

// TestNormalizeGarbage 无法识别 JSON 时返回空映射而不是错误
func TestNormalizeGarbage(t *testing.T) {
	for _, raw := range []string{"", "完全没有 JSON 的回复", "{broken json", "[1,2,3]"} {
		got := Normalize(raw)
		if got == nil {
			t.Errorf("输入 %q 返回了 nil", raw)
		}
		if len(got) != 0 {
			t.Errorf("输入 %q 期望空映射，实际为 %v", raw, got)
		}
	}
}

func TestNormalizeValueCoercion(t *testing.T) {
	got := Normalize(`{"a":"文本","b":3,"c":true,"d":null,"e":{"x":1},"f":[1]}`)
	want := types.FieldMapping{"a": "文本", "b": "3", "c": "true"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("值收敛错误: %v", got)
	}
}
