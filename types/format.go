package types

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// FormatFieldTable 渲染字段表（名称/说明/当前值），用于抽取提示词和 CLI 展示。
func FormatFieldTable(schema *FormSchema, state map[string]string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("字段", "说明", "当前值")
	for _, field := range schema.Fields {
		value := state[field.Name]
		if value == "" {
			value = "（未填写）"
		}
		_ = table.Append(field.Name, field.Description, value)
	}
	_ = table.Render()
	return buf.String()
}

func FormatMissingFieldsSection(schema *FormSchema, missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("# 尚未填写的字段:\n")
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("字段", "说明")
	for _, name := range missing {
		field, _ := schema.Field(name)
		_ = table.Append(field.Name, field.Description)
	}
	_ = table.Render()
	return buf.String()
}
