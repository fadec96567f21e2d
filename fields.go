package cronedit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Weekdays are the day-of-week tokens in the order the weekly flags use.
var Weekdays = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// MonthWeeks are the occurrence suffixes accepted after a weekday token.
var MonthWeeks = []string{"#1", "#2", "#3", "#4", "#5", "L"}

func weekdayIndex(token string) int {
	for i, day := range Weekdays {
		if day == token {
			return i
		}
	}
	return -1
}

// WeekdaySet is the set of weekly day flags, indexed MON..SUN.
type WeekdaySet [7]bool

// Set turns the flag for a weekday token on or off. Unknown tokens are
// ignored.
func (w *WeekdaySet) Set(token string, on bool) {
	if i := weekdayIndex(token); i >= 0 {
		w[i] = on
	}
}

// Has reports whether the weekday token is selected.
func (w WeekdaySet) Has(token string) bool {
	i := weekdayIndex(token)
	return i >= 0 && w[i]
}

// Clear deselects every day.
func (w *WeekdaySet) Clear() {
	*w = WeekdaySet{}
}

// List returns the selected tokens in MON..SUN order.
func (w WeekdaySet) List() []string {
	days := make([]string, 0, len(Weekdays))
	for i, day := range Weekdays {
		if w[i] {
			days = append(days, day)
		}
	}
	return days
}

// MarshalYAML writes the set as a list of tokens.
func (w WeekdaySet) MarshalYAML() (interface{}, error) {
	return w.List(), nil
}

// UnmarshalYAML reads a list of tokens, rejecting unknown ones.
func (w *WeekdaySet) UnmarshalYAML(value *yaml.Node) error {
	var days []string
	if err := value.Decode(&days); err != nil {
		return err
	}
	w.Clear()
	for _, day := range days {
		if weekdayIndex(day) < 0 {
			return fmt.Errorf("unknown weekday %q", day)
		}
		w.Set(day, true)
	}
	return nil
}

// clockFrom24 builds a Clock from a 0-23 hour in the display convention.
func clockFrom24(hours, minutes, seconds int, use24 bool) Clock {
	h, hourType := displayHour(hours, use24)
	return Clock{Hours: h, HourType: hourType, Minutes: minutes, Seconds: seconds}
}

// displayHour converts a 0-23 hour to the display convention.
func displayHour(hour int, use24 bool) (int, HourType) {
	if use24 {
		return hour, ""
	}
	hourType := AM
	if hour >= 12 {
		hourType = PM
	}
	return (hour+11)%12 + 1, hourType
}

// hourToCron converts a display hour back to 0-23.
func hourToCron(hour int, hourType HourType, use24 bool) int {
	if use24 {
		return hour
	}
	if hourType == PM {
		return hour%12 + 12
	}
	return hour % 12
}

// cronParts holds fields in reverse order:
//
//	[year?, dayOfWeek, month, dayOfMonth, hour, minute, second?]
//
// The year is present only for quartz and the second is appended only for
// quartz, so the positions below are relative to the year offset.
type cronParts struct {
	fields []string
	offset int
}

func newCronParts(dialect Dialect) *cronParts {
	p := &cronParts{}
	if dialect == Quartz {
		p.fields = append(p.fields, "*")
		p.offset = 1
	}
	return p
}

const (
	partDayOfWeek = iota
	partMonth
	partDayOfMonth
	partHour
	partMinute
	partSecond
)

func (p *cronParts) add(fields ...string) {
	p.fields = append(p.fields, fields...)
}

func (p *cronParts) get(part int) string {
	i := p.offset + part
	if i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

func (p *cronParts) set(part int, value string) {
	if i := p.offset + part; i < len(p.fields) {
		p.fields[i] = value
	}
}

// normalize drops steps of one, which mean "every unit" anyway:
// https://serverfault.com/questions/583111/cron-expression-difference-between-0-1-1-1-and/583121#583121
func (p *cronParts) normalize() {
	for _, part := range []int{partMinute, partHour} {
		if p.get(part) == "0/1" {
			p.set(part, "*")
		}
	}
	for _, part := range []int{partMonth, partDayOfMonth} {
		if p.get(part) == "1/1" {
			p.set(part, "*")
		}
	}
}

// String reverses the fields into cron order and joins them.
func (p *cronParts) String() string {
	fields := slices.Clone(p.fields)
	slices.Reverse(fields)
	return strings.Join(fields, " ")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
