package form

import (
	"testing"

	"github.com/tbxark/reportagent/types"
)

func dailySchema(t *testing.T) *types.FormSchema {
	t.Helper()
	schema, err := SchemaFor(types.FormDaily)
	if err != nil {
		t.Fatalf("获取日报结构失败: %v", err)
	}
	return schema
}

// TestMergeIdempotent 同一抽取结果应用两次与应用一次结果相同
func TestMergeIdempotent(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)
	extracted := types.FieldMapping{
		"今日工作内容": "完成了代码审查",
		"工作成果":   "解决了3个bug",
	}

	once, err := Merge(schema, state, extracted)
	if err != nil {
		t.Fatalf("第一次合并失败: %v", err)
	}
	twice, err := Merge(schema, once, extracted)
	if err != nil {
		t.Fatalf("第二次合并失败: %v", err)
	}
	if !once.Equal(twice) {
		t.Errorf("合并不幂等: %v vs %v", once, twice)
	}
}

// TestMergeEmptyNeverOverwrites 空值不能覆盖已有的非空值
func TestMergeEmptyNeverOverwrites(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)
	state["今日工作内容"] = "已有内容"
	state["工作成果"] = "已有成果"

	merged, err := Merge(schema, state, types.FieldMapping{
		"今日工作内容": "",
		"工作成果":   "",
		"遇到的问题":  "",
	})
	if err != nil {
		t.Fatalf("合并失败: %v", err)
	}
	if merged["今日工作内容"] != "已有内容" || merged["工作成果"] != "已有成果" {
		t.Errorf("空值覆盖了已有内容: %v", merged)
	}
}

// TestMergeLastNonEmptyWins 新的非空值覆盖旧值
func TestMergeLastNonEmptyWins(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)
	state["明日计划"] = "旧计划"

	merged, err := Merge(schema, state, types.FieldMapping{"明日计划": "新计划"})
	if err != nil {
		t.Fatalf("合并失败: %v", err)
	}
	if merged["明日计划"] != "新计划" {
		t.Errorf("期望新计划覆盖旧值，实际为 %s", merged["明日计划"])
	}
}

// TestMergeDerivedFieldImmunity 任何抽取结果都不能改动派生字段
func TestMergeDerivedFieldImmunity(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)
	state["日期"] = "2025-04-27"

	merged, err := Merge(schema, state, types.FieldMapping{"日期": "1999-01-01"})
	if err != nil {
		t.Fatalf("合并失败: %v", err)
	}
	if merged["日期"] != "2025-04-27" {
		t.Errorf("派生字段被抽取结果修改: %s", merged["日期"])
	}
}

// TestMergeIgnoresUnknownFields 不在 schema 内的字段被忽略，不产生键漂移
func TestMergeIgnoresUnknownFields(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)

	merged, err := Merge(schema, state, types.FieldMapping{
		"不存在的字段": "某值",
		"今日工作内容": "正常内容",
	})
	if err != nil {
		t.Fatalf("合并失败: %v", err)
	}
	if _, ok := merged["不存在的字段"]; ok {
		t.Error("未知字段进入了状态")
	}
	if len(merged) != len(schema.Fields) {
		t.Errorf("状态键数量漂移: %d vs %d", len(merged), len(schema.Fields))
	}
	if merged["今日工作内容"] != "正常内容" {
		t.Errorf("合法字段未被合并: %v", merged)
	}
}

func TestMergePure(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)
	state["工作成果"] = "原值"

	_, err := Merge(schema, state, types.FieldMapping{"工作成果": "改动"})
	if err != nil {
		t.Fatalf("合并失败: %v", err)
	}
	if state["工作成果"] != "原值" {
		t.Error("合并修改了输入状态")
	}
}

func TestApplyDerivedOverwrites(t *testing.T) {
	schema := dailySchema(t)
	state := NewState(schema)
	state["日期"] = "2025-04-26"

	updated := ApplyDerived(schema, state, types.FieldMapping{
		"日期":     "2025-04-27",
		"今日工作内容": "不应写入",
	})
	if updated["日期"] != "2025-04-27" {
		t.Errorf("派生字段未被刷新: %s", updated["日期"])
	}
	if updated["今日工作内容"] != "" {
		t.Error("ApplyDerived 写入了非派生字段")
	}
}
