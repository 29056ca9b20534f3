package entry

import (
	"time"

	"github.com/SlpAus/instant-win-backend/internal/platform/apperr"
	"github.com/jinzhu/now"
)

// MomentLayout 是中奖时刻的规范格式
const MomentLayout = "2006-01-02 15:04:05"

// datedLayouts 同时包含日期和时间。秒后的小数部分由 time.Parse 自动接受，规范化时丢弃。
var datedLayouts = []string{
	"2006-1-2 15:4:5",
	"2006-1-2T15:4:5",
	time.RFC3339,
	"2006-1-2 15:4:5Z07:00",
	"2006-1-2 15:4",
	"2006-1-2T15:4",
	"2006/1/2 15:4:5",
}

// clockLayouts 只有时间部分，日期取参考时钟的当天
var clockLayouts = []string{
	"15:4:5",
	"15:4",
}

var errBadMoment = &apperr.ValidationError{
	Field:   fieldWinningMoment,
	Message: "Value for winning_moment is not defined or not in expected time format.",
}

// NormalizeMoment 解析提交的时刻并输出 "YYYY-MM-DD HH:MM:SS"。
// 带日期的输入与 ref 无关；只有时间部分的输入使用 ref 所在的日期。
// 带时区的输入保留其原始偏移，不做换算。
func NormalizeMoment(raw string, ref time.Time) (string, error) {
	loc := ref.Location()
	if t, ok := parseAny(datedLayouts, raw, loc); ok {
		return t.Format(MomentLayout), nil
	}

	clock, ok := parseAny(clockLayouts, raw, loc)
	if !ok {
		return "", errBadMoment
	}
	day := now.With(ref).BeginningOfDay()
	t := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, loc)
	return t.Format(MomentLayout), nil
}

func parseAny(layouts []string, raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
