// Package timeinfo 计算报表的时间上下文。所有函数均为纯函数，
// 对同一时刻的输入产生相同输出。
package timeinfo

import (
	"fmt"
	"time"

	"github.com/tbxark/reportagent/types"
)

const dateLayout = "2006-01-02"

type Info struct {
	Date      string `json:"date"`
	Year      string `json:"year"`
	Month     string `json:"month"`
	Day       string `json:"day"`
	WeekLabel string `json:"week"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Timestamp string `json:"timestamp"`
}

// Collect 计算给定时刻的时间上下文。周以周一为起点。
func Collect(now time.Time) Info {
	weekStart := now.AddDate(0, 0, -int((now.Weekday()+6)%7))
	weekEnd := weekStart.AddDate(0, 0, 6)
	_, weekNumber := now.ISOWeek()

	return Info{
		Date:      now.Format(dateLayout),
		Year:      now.Format("2006"),
		Month:     now.Format("01"),
		Day:       now.Format("02"),
		WeekLabel: fmt.Sprintf("%d年第%d周", now.Year(), weekNumber),
		WeekStart: weekStart.Format(dateLayout),
		WeekEnd:   weekEnd.Format(dateLayout),
		Timestamp: now.Format("2006-01-02 15:04:05"),
	}
}

// DerivedValues 按表单类型选出应写入派生字段的值。
// 这些值绕过合并规则直接写入状态，每次刷新时间上下文都会被重新覆盖。
func DerivedValues(formType types.FormType, info Info) types.FieldMapping {
	switch formType {
	case types.FormDaily:
		return types.FieldMapping{"日期": info.Date}
	case types.FormWeekly:
		return types.FieldMapping{
			"周次":   info.WeekLabel,
			"开始日期": info.WeekStart,
			"结束日期": info.WeekEnd,
		}
	case types.FormAnnual:
		return types.FieldMapping{"年份": info.Year}
	default:
		return types.FieldMapping{}
	}
}
