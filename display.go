package cronedit

import "strconv"

var dayNames = map[string]string{
	"MON": "Monday",
	"TUE": "Tuesday",
	"WED": "Wednesday",
	"THU": "Thursday",
	"FRI": "Friday",
	"SAT": "Saturday",
	"SUN": "Sunday",
}

var monthWeekNames = map[string]string{
	"#1": "First",
	"#2": "Second",
	"#3": "Third",
	"#4": "Fourth",
	"#5": "Fifth",
	"L":  "Last",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayDisplay returns the label of a weekday token, or "" if unknown.
func DayDisplay(day string) string {
	return dayNames[day]
}

// MonthWeekDisplay returns the label of an occurrence suffix, or "" if
// unknown.
func MonthWeekDisplay(monthWeek string) string {
	return monthWeekNames[monthWeek]
}

// MonthDisplay returns the name of a 1-12 month, or "" if out of range.
func MonthDisplay(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthDayDisplay returns the label of a day-of-month token.
func MonthDayDisplay(day string) string {
	switch day {
	case "L":
		return "Last Day"
	case "LW":
		return "Last Weekday"
	case "1W":
		return "First Weekday"
	default:
		return day + OrdinalSuffix(day) + " day"
	}
}

// OrdinalSuffix returns the English ordinal suffix for a decimal number.
func OrdinalSuffix(value string) string {
	if len(value) > 1 && value[len(value)-2] == '1' {
		return "th"
	}
	if value == "" {
		return "th"
	}
	switch value[len(value)-1] {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	default:
		return "th"
	}
}

// SelectOptions are the values the form widgets offer.
type SelectOptions struct {
	Months                []int
	MonthWeeks            []string
	Days                  []string
	Minutes               []int
	Seconds               []int
	Hours                 []int
	MonthDays             []int
	MonthDaysWithLasts    []string
	MonthDaysWithOutLasts []string
	HourTypes             []HourType
}

// Choices returns the widget values for opts. Hours run 1-12 in 12-hour
// mode and 0-23 otherwise.
func Choices(opts Options) SelectOptions {
	hours := intRange(0, 23)
	if !opts.Use24HourTime {
		hours = intRange(1, 12)
	}

	withoutLasts := make([]string, 0, 31)
	for _, day := range intRange(1, 31) {
		withoutLasts = append(withoutLasts, strconv.Itoa(day))
	}
	withLasts := append(append([]string{"1W"}, withoutLasts...), "LW", "L")

	return SelectOptions{
		Months:                intRange(1, 12),
		MonthWeeks:            append([]string(nil), MonthWeeks...),
		Days:                  append([]string(nil), Weekdays...),
		Minutes:               intRange(0, 59),
		Seconds:               intRange(0, 59),
		Hours:                 hours,
		MonthDays:             intRange(1, 31),
		MonthDaysWithLasts:    withLasts,
		MonthDaysWithOutLasts: withoutLasts,
		HourTypes:             []HourType{AM, PM},
	}
}

func intRange(start, end int) []int {
	values := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		values = append(values, i)
	}
	return values
}
