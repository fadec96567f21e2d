package cronedit

import (
	"fmt"
	"strings"
)

// Encode produces the canonical cron expression for the active mode of s.
//
// The advanced mode returns its stored expression verbatim. Every other mode
// yields exactly 5 fields for the standard dialect and 7 for quartz.
func Encode(s *Schedule, mode Mode, opts Options) (string, error) {
	opts = opts.withDefaults()
	if s == nil {
		return "", fmt.Errorf("%w: nil schedule", ErrInvalidScheduleShape)
	}

	if mode == ModeAdvanced {
		return s.Advanced.Expression, nil
	}

	enc := encoder{use24: opts.Use24HourTime}
	parts := newCronParts(opts.Dialect)
	dayDefault := opts.Dialect.dayDefaultChar()

	var second int
	switch mode {
	case ModeMinutes:
		parts.add(dayDefault, "*", "1/1", "*", "0/"+itoa(s.Minutes.Minutes))
		second = s.Minutes.Seconds

	case ModeHourly:
		parts.add(dayDefault, "*", "1/1", "0/"+itoa(s.Hourly.Hours), itoa(s.Hourly.Minutes))
		second = s.Hourly.Seconds

	case ModeDaily:
		switch s.Daily.SubMode {
		case EveryDays:
			c := s.Daily.EveryDays
			parts.add(dayDefault, "*", "1/"+itoa(c.Days))
			second = enc.clock(parts, c.Clock)
		case EveryWeekDay:
			parts.add("MON-FRI", "*", dayDefault)
			second = enc.clock(parts, s.Daily.EveryWeekDay)
		default:
			return "", fmt.Errorf("%w: daily sub-mode %q", ErrInvalidScheduleShape, s.Daily.SubMode)
		}

	case ModeWeekly:
		days := s.Weekly.Days.List()
		if len(days) == 0 {
			return "", fmt.Errorf("%w: weekly schedule has no day selected", ErrInvalidScheduleShape)
		}
		parts.add(strings.Join(days, ","), "*", dayDefault)
		second = enc.clock(parts, s.Weekly.Clock)

	case ModeMonthly:
		switch s.Monthly.SubMode {
		case SpecificDay:
			c := s.Monthly.SpecificDay
			parts.add(dayDefault, "1/"+itoa(c.Months), c.Day)
			second = enc.clock(parts, c.Clock)
		case SpecificWeekDay:
			c := s.Monthly.SpecificWeekDay
			parts.add(c.Day+c.MonthWeek, "1/"+itoa(c.Months), dayDefault)
			second = enc.clock(parts, c.Clock)
		default:
			return "", fmt.Errorf("%w: monthly sub-mode %q", ErrInvalidScheduleShape, s.Monthly.SubMode)
		}

	case ModeYearly:
		switch s.Yearly.SubMode {
		case SpecificMonthDay:
			c := s.Yearly.SpecificMonthDay
			parts.add(dayDefault, itoa(c.Month), c.Day)
			second = enc.clock(parts, c.Clock)
		case SpecificMonthWeek:
			c := s.Yearly.SpecificMonthWeek
			parts.add(c.Day+c.MonthWeek, itoa(c.Month), dayDefault)
			second = enc.clock(parts, c.Clock)
		default:
			return "", fmt.Errorf("%w: yearly sub-mode %q", ErrInvalidScheduleShape, s.Yearly.SubMode)
		}

	default:
		return "", fmt.Errorf("%w: mode %q", ErrInvalidScheduleShape, mode)
	}

	if opts.Dialect == Quartz {
		parts.add(itoa(second))
	}

	parts.normalize()
	return parts.String(), nil
}

type encoder struct {
	use24 bool
}

// clock appends the hour and minute fields of c and returns its second.
func (e encoder) clock(parts *cronParts, c Clock) int {
	parts.add(itoa(hourToCron(c.Hours, c.HourType, e.use24)), itoa(c.Minutes))
	return c.Seconds
}
