package agent

import (
	"fmt"
	"strings"

	"github.com/tbxark/reportagent/types"
)

// 助手回复为固定模板，不走模型。

var welcomeMessages = map[types.FormType]string{
	types.FormDaily:  "你好！我是你的表单填写助手。请告诉我今天的工作内容，我会帮你整理成一份完整的日报。\n\n你可以这样描述：'今天我完成了XX项目的开发，解决了几个问题...'",
	types.FormWeekly: "你好！我是你的表单填写助手。请告诉我本周的工作内容和成果，我会帮你整理成一份完整的周报。\n\n你可以这样描述：'本周我主要负责了XX项目，完成了哪些任务，遇到了什么问题...'",
	types.FormAnnual: "你好！我是你的表单填写助手。请告诉我今年的工作成果、项目完成情况和未来规划，我会帮你整理成一份完整的年报。\n\n你可以分多次告诉我不同部分的内容，我会逐步完善你的年报。",
}

func welcomeMessage(formType types.FormType) string {
	if msg, ok := welcomeMessages[formType]; ok {
		return msg
	}
	return "你好！我是你的表单填写助手。请告诉我需要填写的内容，我会帮你整理成一份完整的表单。"
}

// collectingReply 一轮收集后的回复：先确认是否捕捉到内容，再列缺失字段或宣布填写完成。
func collectingReply(captured bool, missing []string) string {
	var sb strings.Builder
	if captured {
		sb.WriteString("我已根据您的描述更新了表单内容。\n\n")
	} else {
		sb.WriteString("这次没有捕捉到新的内容，请换一种方式描述试试。\n\n")
	}
	if len(missing) > 0 {
		sb.WriteString("以下字段尚未填写：\n- ")
		sb.WriteString(strings.Join(missing, "\n- "))
		sb.WriteString("\n\n您可以继续描述相关内容。")
	} else {
		sb.WriteString("所有字段都已填写完成！您可以检查表单并提交，或者告诉我需要修改的地方。")
	}
	return sb.String()
}

func submitReply(title string, missing []string) string {
	if len(missing) == 0 {
		return fmt.Sprintf("%s已成功提交！", title)
	}
	return fmt.Sprintf("注意：以下字段仍为空：\n- %s\n\n%s已提交（部分填写）。",
		strings.Join(missing, "\n- "), title)
}

const resetReply = "表单填写已取消。"
