package form

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tbxark/reportagent/types"
)

func TestSchemaForClosedSet(t *testing.T) {
	for _, formType := range AllFormTypes() {
		schema, err := SchemaFor(formType)
		if err != nil {
			t.Fatalf("获取 %s 结构失败: %v", formType, err)
		}
		if schema.Type != formType {
			t.Errorf("结构类型不匹配: %s vs %s", schema.Type, formType)
		}
		if len(schema.Fields) == 0 {
			t.Errorf("%s 没有字段", formType)
		}
	}
}

func TestSchemaForUnknownType(t *testing.T) {
	_, err := SchemaFor(types.FormType("月报"))
	if !errors.Is(err, types.ErrUnknownFormType) {
		t.Errorf("期望 ErrUnknownFormType，实际为 %v", err)
	}
}

func TestDailySchemaFieldOrder(t *testing.T) {
	schema, err := SchemaFor(types.FormDaily)
	if err != nil {
		t.Fatalf("获取日报结构失败: %v", err)
	}
	want := []string{"日期", "今日工作内容", "工作成果", "遇到的问题", "明日计划"}
	if got := schema.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("日报字段顺序错误: %v", got)
	}
	date, ok := schema.Field("日期")
	if !ok || !date.Derived {
		t.Error("日期应为派生字段")
	}
}

func TestWeeklySchemaDerivedFields(t *testing.T) {
	schema, err := SchemaFor(types.FormWeekly)
	if err != nil {
		t.Fatalf("获取周报结构失败: %v", err)
	}
	for _, name := range []string{"周次", "开始日期", "结束日期"} {
		field, ok := schema.Field(name)
		if !ok || !field.Derived {
			t.Errorf("%s 应为派生字段", name)
		}
	}
	if field, ok := schema.Field("本周工作总结"); !ok || field.Derived {
		t.Error("本周工作总结应为非派生字段")
	}
}
