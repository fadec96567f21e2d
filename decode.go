package cronedit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern         = regexp.MustCompile(`^\d+$`)
	monthDayPattern       = regexp.MustCompile(`^(\d+|L|LW|1W)$`)
	weekdayListPattern    = regexp.MustCompile(`^(MON|TUE|WED|THU|FRI|SAT|SUN)(,(MON|TUE|WED|THU|FRI|SAT|SUN))*$`)
	weekdayOrdinalPattern = regexp.MustCompile(`^(MON|TUE|WED|THU|FRI|SAT|SUN)(#[1-5]|L)$`)
)

// cronFields is an expression padded to the full quartz layout.
type cronFields struct {
	second     string
	minute     string
	hour       string
	dayOfMonth string
	month      string
	dayOfWeek  string
	year       string
}

// pattern pairs a structural matcher with the extractor that inverts the
// encoder row producing that structure.
type pattern struct {
	name    string
	match   func(f cronFields) bool
	extract func(f cronFields, s *Schedule, use24 bool) Mode
}

// patterns are evaluated in this order and the first match wins. Every
// matcher requires numeric seconds and a "*" year, which the padding
// guarantees for standard input.
var patterns = []pattern{
	{
		name: "minutes",
		match: func(f cronFields) bool {
			_, ok := step(f.minute, "0/")
			return ok && f.hour == "*" && everyUnit(f.dayOfMonth) && f.month == "*" && isDayDefault(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, _ bool) Mode {
			s.Minutes.Minutes, _ = step(f.minute, "0/")
			s.Minutes.Seconds = number(f.second)
			return ModeMinutes
		},
	},
	{
		name: "hourly",
		match: func(f cronFields) bool {
			_, ok := step(f.hour, "0/")
			return isNumber(f.minute) && ok && everyUnit(f.dayOfMonth) && f.month == "*" && isDayDefault(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, _ bool) Mode {
			s.Hourly.Hours, _ = step(f.hour, "0/")
			s.Hourly.Minutes = number(f.minute)
			s.Hourly.Seconds = number(f.second)
			return ModeHourly
		},
	},
	{
		name: "daily/everyDays",
		match: func(f cronFields) bool {
			_, ok := step(f.dayOfMonth, "1/")
			return f.timed() && ok && f.month == "*" && isDayDefault(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Daily.SubMode = EveryDays
			s.Daily.EveryDays.Days, _ = step(f.dayOfMonth, "1/")
			s.Daily.EveryDays.Clock = f.clock(use24)
			return ModeDaily
		},
	},
	{
		name: "daily/everyWeekDay",
		match: func(f cronFields) bool {
			return f.timed() && isDayDefault(f.dayOfMonth) && f.month == "*" && f.dayOfWeek == "MON-FRI"
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Daily.SubMode = EveryWeekDay
			s.Daily.EveryWeekDay = f.clock(use24)
			return ModeDaily
		},
	},
	{
		name: "weekly",
		match: func(f cronFields) bool {
			return f.timed() && isDayDefault(f.dayOfMonth) && f.month == "*" && weekdayListPattern.MatchString(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Weekly.Days.Clear()
			for _, day := range strings.Split(f.dayOfWeek, ",") {
				s.Weekly.Days.Set(day, true)
			}
			s.Weekly.Clock = f.clock(use24)
			return ModeWeekly
		},
	},
	{
		name: "monthly/specificDay",
		match: func(f cronFields) bool {
			_, ok := step(f.month, "1/")
			return f.timed() && monthDayPattern.MatchString(f.dayOfMonth) && ok && isDayDefault(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Monthly.SubMode = SpecificDay
			s.Monthly.SpecificDay.Day = f.dayOfMonth
			s.Monthly.SpecificDay.Months, _ = step(f.month, "1/")
			s.Monthly.SpecificDay.Clock = f.clock(use24)
			return ModeMonthly
		},
	},
	{
		name: "monthly/specificWeekDay",
		match: func(f cronFields) bool {
			_, ok := step(f.month, "1/")
			return f.timed() && isDayDefault(f.dayOfMonth) && ok && weekdayOrdinalPattern.MatchString(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Monthly.SubMode = SpecificWeekDay
			s.Monthly.SpecificWeekDay.Day, s.Monthly.SpecificWeekDay.MonthWeek = splitWeekdayOrdinal(f.dayOfWeek)
			s.Monthly.SpecificWeekDay.Months, _ = step(f.month, "1/")
			s.Monthly.SpecificWeekDay.Clock = f.clock(use24)
			return ModeMonthly
		},
	},
	{
		name: "yearly/specificMonthDay",
		match: func(f cronFields) bool {
			return f.timed() && monthDayPattern.MatchString(f.dayOfMonth) && isNumber(f.month) && isDayDefault(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Yearly.SubMode = SpecificMonthDay
			s.Yearly.SpecificMonthDay.Month = number(f.month)
			s.Yearly.SpecificMonthDay.Day = f.dayOfMonth
			s.Yearly.SpecificMonthDay.Clock = f.clock(use24)
			return ModeYearly
		},
	},
	{
		name: "yearly/specificMonthWeek",
		match: func(f cronFields) bool {
			return f.timed() && isDayDefault(f.dayOfMonth) && isNumber(f.month) && weekdayOrdinalPattern.MatchString(f.dayOfWeek)
		},
		extract: func(f cronFields, s *Schedule, use24 bool) Mode {
			s.Yearly.SubMode = SpecificMonthWeek
			s.Yearly.SpecificMonthWeek.Day, s.Yearly.SpecificMonthWeek.MonthWeek = splitWeekdayOrdinal(f.dayOfWeek)
			s.Yearly.SpecificMonthWeek.Month = number(f.month)
			s.Yearly.SpecificMonthWeek.Clock = f.clock(use24)
			return ModeYearly
		},
	},
}

// Decode classifies expr and returns its mode together with a default
// schedule whose bundle for that mode is filled from expr.
//
// Expressions that match no known shape decode as ModeAdvanced with the
// input stored unchanged; only a field count the dialect cannot accept is an
// error.
func Decode(expr string, opts Options) (Mode, *Schedule, error) {
	s, err := DefaultSchedule(opts)
	if err != nil {
		return "", nil, err
	}
	mode, err := DecodeInto(expr, opts, s)
	if err != nil {
		return "", nil, err
	}
	return mode, s, nil
}

// DecodeInto is like Decode but writes into an existing schedule, leaving
// the bundles of other modes untouched. s is not modified on error.
func DecodeInto(expr string, opts Options, s *Schedule) (Mode, error) {
	opts = opts.withDefaults()
	if s == nil {
		return "", fmt.Errorf("%w: nil schedule", ErrInvalidScheduleShape)
	}

	f, err := padFields(expr, opts.Dialect)
	if err != nil {
		return "", err
	}

	if isNumber(f.second) && f.year == "*" {
		for _, p := range patterns {
			if p.match(f) {
				return p.extract(f, s, opts.Use24HourTime), nil
			}
		}
	}

	s.Advanced.Expression = expr
	return ModeAdvanced, nil
}

// padFields splits expr and brings it to the 7-field quartz layout.
//
// Standard input must have 5 fields. Quartz input may have 7 fields, 6 fields
// (the year is missing and taken as "*"), or 5 fields, which is a plain cron
// line supplied to a quartz caller and gets a "0" second and a "*" year.
// Fields are separated by any run of whitespace, so repeated spaces are
// accepted.
func padFields(expr string, dialect Dialect) (cronFields, error) {
	fields := strings.Fields(expr)
	n := len(fields)

	if !dialect.validFieldCount(n) && !(dialect == Quartz && n == 5) {
		want := "5"
		if dialect == Quartz {
			want = "6 or 7"
		}
		return cronFields{}, fmt.Errorf("%w: %s expression %q has %d fields, want %s", ErrInvalidFieldCount, dialect, expr, n, want)
	}

	switch n {
	case 5:
		fields = append(append([]string{"0"}, fields...), "*")
	case 6:
		fields = append(fields, "*")
	}

	return cronFields{
		second:     fields[0],
		minute:     fields[1],
		hour:       fields[2],
		dayOfMonth: fields[3],
		month:      fields[4],
		dayOfWeek:  fields[5],
		year:       fields[6],
	}, nil
}

// timed reports whether minute and hour are plain numbers.
func (f cronFields) timed() bool {
	return isNumber(f.minute) && isNumber(f.hour)
}

// clock reads the time of day, converting the hour to the display convention.
func (f cronFields) clock(use24 bool) Clock {
	return clockFrom24(number(f.hour), number(f.minute), number(f.second), use24)
}

func isNumber(field string) bool {
	return numberPattern.MatchString(field)
}

func number(field string) int {
	n, _ := strconv.Atoi(field)
	return n
}

func isDayDefault(field string) bool {
	return field == "?" || field == "*"
}

// everyUnit reports whether field is a step-of-one day-of-month in either
// spelling.
func everyUnit(field string) bool {
	n, ok := step(field, "1/")
	return ok && n == 1
}

// step parses "<prefix><n>" and also accepts "*", the normalized form of a
// step of one.
func step(field, prefix string) (int, bool) {
	if field == "*" {
		return 1, true
	}
	rest, found := strings.CutPrefix(field, prefix)
	if !found || !isNumber(rest) {
		return 0, false
	}
	return number(rest), true
}

// splitWeekdayOrdinal splits "MON#2" into "MON" and "#2".
func splitWeekdayOrdinal(field string) (string, string) {
	return field[:3], field[3:]
}
