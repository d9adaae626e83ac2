package timefilter

import (
	"errors"
	"fmt"
	"time"

	"bikeshare/utils"
)

// AllStr is the value reported for the side of the filter that is not restricted
const AllStr = "all"

var (
	ErrUnknownMonth = errors.New("unknown month")
	ErrUnknownDay   = errors.New("unknown day")
)

var (
	months = []string{"january", "february", "march", "april", "may", "june"}
	days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Kind tells which restriction a TimeFilter applies
type Kind int

const (
	All Kind = iota
	ByMonth
	ByDay
)

// TimeFilter restricts the analysis to a month, to a day of the week or to nothing at all.
// Only one of month and day can be active at the same time.
type TimeFilter struct {
	kind  Kind
	month time.Month
	day   time.Weekday
}

// Months returns the month names accepted by NewMonthFilter
func Months() []string {
	return append([]string(nil), months...)
}

// Days returns the weekday names accepted by NewDayFilter
func Days() []string {
	return append([]string(nil), days...)
}

func NoFilter() TimeFilter {
	return TimeFilter{kind: All}
}

// NewMonthFilter builds a filter for a month name between january and june, letter case is ignored
func NewMonthFilter(name string) (TimeFilter, error) {
	idx := utils.IndexOf(utils.NormalizeInput(name), months)
	if idx < 0 {
		return TimeFilter{}, fmt.Errorf("%w: %q", ErrUnknownMonth, name)
	}
	return TimeFilter{kind: ByMonth, month: time.Month(idx + 1)}, nil
}

// NewDayFilter builds a filter for a weekday name, letter case is ignored
func NewDayFilter(name string) (TimeFilter, error) {
	idx := utils.IndexOf(utils.NormalizeInput(name), days)
	if idx < 0 {
		return TimeFilter{}, fmt.Errorf("%w: %q", ErrUnknownDay, name)
	}
	// days starts on monday, time.Weekday starts on sunday
	return TimeFilter{kind: ByDay, day: time.Weekday((idx + 1) % 7)}, nil
}

func (tf TimeFilter) Kind() Kind {
	return tf.kind
}

// Month returns the month to keep. The bool is false when the filter is not by month
func (tf TimeFilter) Month() (time.Month, bool) {
	return tf.month, tf.kind == ByMonth
}

// Day returns the weekday to keep. The bool is false when the filter is not by day
func (tf TimeFilter) Day() (time.Weekday, bool) {
	return tf.day, tf.kind == ByDay
}

// MonthName returns the lower-case month name or "all"
func (tf TimeFilter) MonthName() string {
	if tf.kind != ByMonth {
		return AllStr
	}
	return months[tf.month-1]
}

// DayName returns the lower-case weekday name or "all"
func (tf TimeFilter) DayName() string {
	if tf.kind != ByDay {
		return AllStr
	}
	return days[(int(tf.day)+6)%7]
}

func (tf TimeFilter) String() string {
	return fmt.Sprintf("month: %s, day: %s", tf.MonthName(), tf.DayName())
}
