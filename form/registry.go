// Package form 定义报表表单的结构目录、状态合并与完成度计算。
package form

import (
	"fmt"

	"github.com/tbxark/reportagent/types"
)

// registry 是静态表单目录。派生字段由时间上下文填写，抽取与合并均不可触碰。
var registry = map[types.FormType]*types.FormSchema{
	types.FormDaily: {
		Type:        types.FormDaily,
		Title:       "日报",
		Description: "每日工作总结与计划",
		Fields: []types.FieldSpec{
			{Name: "日期", Description: "填写日报的日期，格式：YYYY-MM-DD", Derived: true},
			{Name: "今日工作内容", Description: "今天完成的工作内容"},
			{Name: "工作成果", Description: "今天的工作成果"},
			{Name: "遇到的问题", Description: "工作中遇到的问题及解决方案"},
			{Name: "明日计划", Description: "明天的工作计划"},
		},
	},
	types.FormWeekly: {
		Type:        types.FormWeekly,
		Title:       "周报",
		Description: "每周工作总结与计划",
		Fields: []types.FieldSpec{
			{Name: "周次", Description: "第几周，例如：2025年第12周", Derived: true},
			{Name: "开始日期", Description: "本周起始日期，格式：YYYY-MM-DD", Derived: true},
			{Name: "结束日期", Description: "本周结束日期，格式：YYYY-MM-DD", Derived: true},
			{Name: "本周工作总结", Description: "本周完成的主要工作内容"},
			{Name: "工作成果", Description: "本周的工作成果"},
			{Name: "问题与挑战", Description: "本周遇到的问题及解决方案"},
			{Name: "下周计划", Description: "下周的工作计划"},
			{Name: "需要协助", Description: "需要团队或上级协助的事项"},
		},
	},
	types.FormAnnual: {
		Type:        types.FormAnnual,
		Title:       "年报",
		Description: "年度工作总结与计划",
		Fields: []types.FieldSpec{
			{Name: "年份", Description: "报告年份，例如：2025", Derived: true},
			{Name: "年度工作总结", Description: "本年度完成的主要工作内容"},
			{Name: "关键成就", Description: "本年度的主要成就"},
			{Name: "项目回顾", Description: "本年度参与的关键项目及其成果"},
			{Name: "挑战与解决方案", Description: "本年度遇到的挑战及解决方案"},
			{Name: "个人成长", Description: "本年度个人成长与技能提升"},
			{Name: "来年目标", Description: "下一年度的工作目标与计划"},
			{Name: "需要支持", Description: "实现目标需要的支持和资源"},
		},
	},
}

// formTypeOrder 表单类型的展示顺序
var formTypeOrder = []types.FormType{types.FormDaily, types.FormWeekly, types.FormAnnual}

// SchemaFor 返回表单类型对应的结构定义，类型不在闭集内时返回 ErrUnknownFormType。
func SchemaFor(formType types.FormType) (*types.FormSchema, error) {
	schema, ok := registry[formType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFormType, formType)
	}
	return schema, nil
}

// AllFormTypes 返回全部表单类型，顺序固定。
func AllFormTypes() []types.FormType {
	out := make([]types.FormType, len(formTypeOrder))
	copy(out, formTypeOrder)
	return out
}
