// Package cronedit translates between structured schedule descriptions and
// cron expressions in the standard (5-field) and quartz (7-field) dialects.
package cronedit

// Mode is the high-level recurrence shape of a schedule.
type Mode string

const (
	ModeMinutes  Mode = "minutes"
	ModeHourly   Mode = "hourly"
	ModeDaily    Mode = "daily"
	ModeWeekly   Mode = "weekly"
	ModeMonthly  Mode = "monthly"
	ModeYearly   Mode = "yearly"
	ModeAdvanced Mode = "advanced"
)

// AllModes lists every mode in tab order.
var AllModes = []Mode{
	ModeMinutes,
	ModeHourly,
	ModeDaily,
	ModeWeekly,
	ModeMonthly,
	ModeYearly,
	ModeAdvanced,
}

// DailySubMode selects the daily field layout.
type DailySubMode string

const (
	EveryDays    DailySubMode = "everyDays"
	EveryWeekDay DailySubMode = "everyWeekDay"
)

// MonthlySubMode selects the monthly field layout.
type MonthlySubMode string

const (
	SpecificDay     MonthlySubMode = "specificDay"
	SpecificWeekDay MonthlySubMode = "specificWeekDay"
)

// YearlySubMode selects the yearly field layout.
type YearlySubMode string

const (
	SpecificMonthDay  YearlySubMode = "specificMonthDay"
	SpecificMonthWeek YearlySubMode = "specificMonthWeek"
)

// HourType tags a 12-hour value. It is empty when hours are stored as 0-23.
type HourType string

const (
	AM HourType = "AM"
	PM HourType = "PM"
)

// Clock is a time of day in the configured hour convention.
type Clock struct {
	Hours    int      `yaml:"hours" bson:"hours"`
	HourType HourType `yaml:"hourType,omitempty" bson:"hourType,omitempty"`
	Minutes  int      `yaml:"minutes" bson:"minutes"`
	Seconds  int      `yaml:"seconds" bson:"seconds"`
}

// MinutesSchedule fires every Minutes minutes. Seconds is only encoded for
// the quartz dialect.
type MinutesSchedule struct {
	Minutes int `yaml:"minutes" bson:"minutes"`
	Seconds int `yaml:"seconds" bson:"seconds"`
}

// HourlySchedule fires every Hours hours at the given minute and second.
type HourlySchedule struct {
	Hours   int `yaml:"hours" bson:"hours"`
	Minutes int `yaml:"minutes" bson:"minutes"`
	Seconds int `yaml:"seconds" bson:"seconds"`
}

// EveryDaysSchedule fires every Days days at a time of day.
type EveryDaysSchedule struct {
	Days  int `yaml:"days" bson:"days"`
	Clock `yaml:",inline" bson:",inline"`
}

// DailySchedule fires every N days or on every weekday.
type DailySchedule struct {
	SubMode      DailySubMode      `yaml:"subMode" bson:"subMode"`
	EveryDays    EveryDaysSchedule `yaml:"everyDays" bson:"everyDays"`
	EveryWeekDay Clock             `yaml:"everyWeekDay" bson:"everyWeekDay"`
}

// WeeklySchedule fires on the selected weekdays at a time of day.
type WeeklySchedule struct {
	Days  WeekdaySet `yaml:"days" bson:"days"`
	Clock `yaml:",inline" bson:",inline"`
}

// MonthDaySchedule fires on a day-of-month token (1-31, L, LW or 1W) every
// Months months.
type MonthDaySchedule struct {
	Day    string `yaml:"day" bson:"day"`
	Months int    `yaml:"months" bson:"months"`
	Clock  `yaml:",inline" bson:",inline"`
}

// MonthWeekDaySchedule fires on the MonthWeek occurrence (#1..#5 or L) of a
// weekday every Months months.
type MonthWeekDaySchedule struct {
	Day       string `yaml:"day" bson:"day"`
	MonthWeek string `yaml:"monthWeek" bson:"monthWeek"`
	Months    int    `yaml:"months" bson:"months"`
	Clock     `yaml:",inline" bson:",inline"`
}

// MonthlySchedule fires on a day of the month or a weekday occurrence.
type MonthlySchedule struct {
	SubMode         MonthlySubMode       `yaml:"subMode" bson:"subMode"`
	SpecificDay     MonthDaySchedule     `yaml:"specificDay" bson:"specificDay"`
	SpecificWeekDay MonthWeekDaySchedule `yaml:"specificWeekDay" bson:"specificWeekDay"`
}

// YearDaySchedule fires once a year on a day-of-month token of Month.
type YearDaySchedule struct {
	Month int    `yaml:"month" bson:"month"`
	Day   string `yaml:"day" bson:"day"`
	Clock `yaml:",inline" bson:",inline"`
}

// YearWeekDaySchedule fires once a year on a weekday occurrence in Month.
type YearWeekDaySchedule struct {
	Month     int    `yaml:"month" bson:"month"`
	Day       string `yaml:"day" bson:"day"`
	MonthWeek string `yaml:"monthWeek" bson:"monthWeek"`
	Clock     `yaml:",inline" bson:",inline"`
}

// YearlySchedule fires once a year on a day or a weekday occurrence.
type YearlySchedule struct {
	SubMode           YearlySubMode       `yaml:"subMode" bson:"subMode"`
	SpecificMonthDay  YearDaySchedule     `yaml:"specificMonthDay" bson:"specificMonthDay"`
	SpecificMonthWeek YearWeekDaySchedule `yaml:"specificMonthWeek" bson:"specificMonthWeek"`
}

// AdvancedSchedule holds a raw expression that is stored and returned
// unchanged.
type AdvancedSchedule struct {
	Expression string `yaml:"expression" bson:"expression"`
}

// Schedule carries one bundle per mode. Only the bundle of the active mode
// contributes to the encoded expression; the others keep their values so
// switching modes back and forth loses nothing.
type Schedule struct {
	Minutes  MinutesSchedule  `yaml:"minutes" bson:"minutes"`
	Hourly   HourlySchedule   `yaml:"hourly" bson:"hourly"`
	Daily    DailySchedule    `yaml:"daily" bson:"daily"`
	Weekly   WeeklySchedule   `yaml:"weekly" bson:"weekly"`
	Monthly  MonthlySchedule  `yaml:"monthly" bson:"monthly"`
	Yearly   YearlySchedule   `yaml:"yearly" bson:"yearly"`
	Advanced AdvancedSchedule `yaml:"advanced" bson:"advanced"`
}

// Snapshot is the externally readable view of an editor.
type Snapshot struct {
	Mode     Mode      `yaml:"mode"`
	Cron     string    `yaml:"cron,omitempty"`
	Schedule *Schedule `yaml:"schedule"`
}

// DefaultSchedule returns the state every mode starts from, seeded with
// opts.DefaultTime in the configured hour convention.
func DefaultSchedule(opts Options) (*Schedule, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hours, minutes, seconds, _ := opts.defaultClock()
	clock := clockFrom24(hours, minutes, seconds, opts.Use24HourTime)

	advanced := "15 10 2 * *"
	if opts.Dialect == Quartz {
		advanced = "0 15 10 L-2 * ? *"
	}

	var monday WeekdaySet
	monday.Set("MON", true)

	return &Schedule{
		Minutes: MinutesSchedule{Minutes: 1, Seconds: 0},
		Hourly:  HourlySchedule{Hours: 1, Minutes: 0, Seconds: 0},
		Daily: DailySchedule{
			SubMode:      EveryDays,
			EveryDays:    EveryDaysSchedule{Days: 1, Clock: clock},
			EveryWeekDay: clock,
		},
		Weekly: WeeklySchedule{Days: monday, Clock: clock},
		Monthly: MonthlySchedule{
			SubMode:         SpecificDay,
			SpecificDay:     MonthDaySchedule{Day: "1", Months: 1, Clock: clock},
			SpecificWeekDay: MonthWeekDaySchedule{Day: "MON", MonthWeek: "#1", Months: 1, Clock: clock},
		},
		Yearly: YearlySchedule{
			SubMode:           SpecificMonthDay,
			SpecificMonthDay:  YearDaySchedule{Month: 1, Day: "1", Clock: clock},
			SpecificMonthWeek: YearWeekDaySchedule{Month: 1, Day: "MON", MonthWeek: "#1", Clock: clock},
		},
		Advanced: AdvancedSchedule{Expression: advanced},
	}, nil
}

// convertClocks rewrites every stored time of day from one hour convention
// to the other, keeping the 0-23 hour it denotes.
func (s *Schedule) convertClocks(fromUse24, toUse24 bool) {
	clocks := []*Clock{
		&s.Daily.EveryDays.Clock,
		&s.Daily.EveryWeekDay,
		&s.Weekly.Clock,
		&s.Monthly.SpecificDay.Clock,
		&s.Monthly.SpecificWeekDay.Clock,
		&s.Yearly.SpecificMonthDay.Clock,
		&s.Yearly.SpecificMonthWeek.Clock,
	}
	for _, c := range clocks {
		*c = clockFrom24(hourToCron(c.Hours, c.HourType, fromUse24), c.Minutes, c.Seconds, toUse24)
	}
}
