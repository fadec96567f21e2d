package cronedit

import (
	"errors"
	"reflect"
	"testing"
)

func mustDecode(t *testing.T, expr string, opts Options) (Mode, *Schedule) {
	t.Helper()
	mode, s, err := Decode(expr, opts)
	if err != nil {
		t.Fatalf("Decode(%q): %v", expr, err)
	}
	return mode, s
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, dialect := range []Dialect{Standard, Quartz} {
		for _, use24 := range []bool{true, false} {
			opts := DefaultOptions()
			opts.Dialect = dialect
			opts.Use24HourTime = use24

			// Seconds only survive in the quartz layout
			second := 0
			if dialect == Quartz {
				second = 42
			}

			for _, sh := range shapes {
				name := string(dialect) + "/" + sh.name
				if !use24 {
					name += "/12h"
				}
				t.Run(name, func(t *testing.T) {
					want := mustDefaultSchedule(t, opts)
					sh.mutate(want, use24, second)
					cron := mustEncode(t, want, sh.mode, opts)

					mode, got := mustDecode(t, cron, opts)
					if mode != sh.mode {
						t.Fatalf("Decode(%q) mode = %s, want %s", cron, mode, sh.mode)
					}
					if !reflect.DeepEqual(got, want) {
						t.Errorf("Decode(%q) state = %+v, want %+v", cron, got, want)
					}
					if again := mustEncode(t, got, mode, opts); again != cron {
						t.Errorf("re-encode = %q, want %q", again, cron)
					}
				})
			}
		}
	}
}

func TestDecode_Standard(t *testing.T) {
	opts := DefaultOptions()

	t.Run("minutes", func(t *testing.T) {
		mode, s := mustDecode(t, "0/10 * * * *", opts)
		if mode != ModeMinutes || s.Minutes.Minutes != 10 {
			t.Errorf("got %s %+v", mode, s.Minutes)
		}
	})

	t.Run("every minute", func(t *testing.T) {
		mode, s := mustDecode(t, "* * * * *", opts)
		if mode != ModeMinutes || s.Minutes.Minutes != 1 {
			t.Errorf("got %s %+v", mode, s.Minutes)
		}
	})

	t.Run("unnormalized steps of one", func(t *testing.T) {
		mode, s := mustDecode(t, "0/1 * 1/1 * *", opts)
		if mode != ModeMinutes || s.Minutes.Minutes != 1 {
			t.Errorf("got %s %+v", mode, s.Minutes)
		}
	})

	t.Run("hourly", func(t *testing.T) {
		mode, s := mustDecode(t, "20 0/4 * * *", opts)
		want := HourlySchedule{Hours: 4, Minutes: 20}
		if mode != ModeHourly || s.Hourly != want {
			t.Errorf("got %s %+v", mode, s.Hourly)
		}
	})

	t.Run("app default", func(t *testing.T) {
		mode, s := mustDecode(t, "0 0 1/1 * *", opts)
		if mode != ModeDaily || s.Daily.SubMode != EveryDays || s.Daily.EveryDays.Days != 1 {
			t.Errorf("got %s %+v", mode, s.Daily)
		}
	})

	t.Run("weekly clears default days", func(t *testing.T) {
		mode, s := mustDecode(t, "0 8 * * SAT,SUN", opts)
		if mode != ModeWeekly {
			t.Fatalf("got mode %s", mode)
		}
		if got := s.Weekly.Days.List(); !reflect.DeepEqual(got, []string{"SAT", "SUN"}) {
			t.Errorf("days = %v, want [SAT SUN]", got)
		}
	})

	t.Run("monthly specific week day", func(t *testing.T) {
		mode, s := mustDecode(t, "0 8 * 1/3 MONL", opts)
		want := MonthWeekDaySchedule{Day: "MON", MonthWeek: "L", Months: 3, Clock: Clock{Hours: 8}}
		if mode != ModeMonthly || s.Monthly.SubMode != SpecificWeekDay || s.Monthly.SpecificWeekDay != want {
			t.Errorf("got %s %+v", mode, s.Monthly)
		}
	})

	t.Run("yearly", func(t *testing.T) {
		mode, s := mustDecode(t, "30 7 25 12 *", opts)
		want := YearDaySchedule{Month: 12, Day: "25", Clock: Clock{Hours: 7, Minutes: 30}}
		if mode != ModeYearly || s.Yearly.SpecificMonthDay != want {
			t.Errorf("got %s %+v", mode, s.Yearly)
		}
	})

	t.Run("12-hour conversion", func(t *testing.T) {
		_, s := mustDecode(t, "0 0 * * *", twelveHourOptions(Standard))
		want := Clock{Hours: 12, HourType: AM}
		if s.Daily.EveryDays.Clock != want {
			t.Errorf("clock = %+v, want %+v", s.Daily.EveryDays.Clock, want)
		}

		_, s = mustDecode(t, "0 13 * * *", twelveHourOptions(Standard))
		want = Clock{Hours: 1, HourType: PM}
		if s.Daily.EveryDays.Clock != want {
			t.Errorf("clock = %+v, want %+v", s.Daily.EveryDays.Clock, want)
		}
	})
}

func TestDecode_Quartz(t *testing.T) {
	opts := quartzOptions()

	t.Run("advanced default is preserved", func(t *testing.T) {
		expr := "0 15 10 L-2 * ? *"
		mode, s := mustDecode(t, expr, opts)
		if mode != ModeAdvanced {
			t.Fatalf("mode = %s, want advanced", mode)
		}
		if s.Advanced.Expression != expr {
			t.Errorf("expression = %q, want %q", s.Advanced.Expression, expr)
		}
	})

	t.Run("weekly", func(t *testing.T) {
		mode, s := mustDecode(t, "0 30 9 ? * MON,WED,FRI *", twelveHourOptions(Quartz))
		if mode != ModeWeekly {
			t.Fatalf("mode = %s, want weekly", mode)
		}
		if got := s.Weekly.Days.List(); !reflect.DeepEqual(got, []string{"MON", "WED", "FRI"}) {
			t.Errorf("days = %v", got)
		}
		want := Clock{Hours: 9, HourType: AM, Minutes: 30}
		if s.Weekly.Clock != want {
			t.Errorf("clock = %+v, want %+v", s.Weekly.Clock, want)
		}
	})

	t.Run("six fields are missing the year", func(t *testing.T) {
		mode, s := mustDecode(t, "5 0 12 ? * MON-FRI", opts)
		want := Clock{Hours: 12, Seconds: 5}
		if mode != ModeDaily || s.Daily.SubMode != EveryWeekDay || s.Daily.EveryWeekDay != want {
			t.Errorf("got %s %+v", mode, s.Daily)
		}
	})

	t.Run("five fields are padded", func(t *testing.T) {
		mode, s := mustDecode(t, "15 10 * * MON,THU", opts)
		if mode != ModeWeekly {
			t.Fatalf("mode = %s, want weekly", mode)
		}
		want := Clock{Hours: 10, Minutes: 15, Seconds: 0}
		if s.Weekly.Clock != want {
			t.Errorf("clock = %+v, want %+v", s.Weekly.Clock, want)
		}
	})

	t.Run("five unrecognized fields keep the original text", func(t *testing.T) {
		expr := "*/15 9-17 * * 1-5"
		mode, s := mustDecode(t, expr, opts)
		if mode != ModeAdvanced || s.Advanced.Expression != expr {
			t.Errorf("got %s %q", mode, s.Advanced.Expression)
		}
	})

	t.Run("explicit year is advanced", func(t *testing.T) {
		mode, _ := mustDecode(t, "0 0 12 1 1 ? 2030", opts)
		if mode != ModeAdvanced {
			t.Errorf("mode = %s, want advanced", mode)
		}
	})

	t.Run("yearly month week", func(t *testing.T) {
		mode, s := mustDecode(t, "0 0 9 ? 5 SUN#2 *", opts)
		want := YearWeekDaySchedule{Month: 5, Day: "SUN", MonthWeek: "#2", Clock: Clock{Hours: 9}}
		if mode != ModeYearly || s.Yearly.SubMode != SpecificMonthWeek || s.Yearly.SpecificMonthWeek != want {
			t.Errorf("got %s %+v", mode, s.Yearly)
		}
	})
}

func TestDecode_Advanced(t *testing.T) {
	expressions := []string{
		"*/15 9-17 * * 1-5",
		"0 0 1,15 * *",
		"0 12 * * MON#6",
		"0 12 * JAN *",
		"@daily 0 0 0 0",
	}
	opts := DefaultOptions()
	for _, expr := range expressions {
		t.Run(expr, func(t *testing.T) {
			mode, s := mustDecode(t, expr, opts)
			if mode != ModeAdvanced {
				t.Fatalf("mode = %s, want advanced", mode)
			}
			if s.Advanced.Expression != expr {
				t.Errorf("expression = %q, want %q", s.Advanced.Expression, expr)
			}
			if got := mustEncode(t, s, ModeAdvanced, opts); got != expr {
				t.Errorf("Encode(advanced) = %q, want %q", got, expr)
			}
		})
	}
}

func TestDecode_InvalidFieldCount(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		dialect Dialect
	}{
		{"empty", "", Standard},
		{"standard with seconds", "0 0 0 * * *", Standard},
		{"standard too short", "* * * *", Standard},
		{"quartz too short", "* * * *", Quartz},
		{"quartz too long", "0 0 0 * * ? * *", Quartz},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Dialect = test.dialect
			if _, _, err := Decode(test.expr, opts); !errors.Is(err, ErrInvalidFieldCount) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidFieldCount", test.expr, err)
			}
		})
	}
}

func TestDecodeInto_KeepsOtherModes(t *testing.T) {
	opts := DefaultOptions()
	s := mustDefaultSchedule(t, opts)
	s.Hourly = HourlySchedule{Hours: 6, Minutes: 7}

	mode, err := DecodeInto("0/3 * * * *", opts, s)
	if err != nil {
		t.Fatalf("DecodeInto: %v", err)
	}
	if mode != ModeMinutes || s.Minutes.Minutes != 3 {
		t.Errorf("got %s %+v", mode, s.Minutes)
	}
	if s.Hourly != (HourlySchedule{Hours: 6, Minutes: 7}) {
		t.Errorf("hourly bundle changed: %+v", s.Hourly)
	}

	before := *s
	if _, err := DecodeInto("* *", opts, s); err == nil {
		t.Fatal("expected error")
	}
	if !reflect.DeepEqual(*s, before) {
		t.Error("schedule modified on error")
	}
}

func TestPatternOrder(t *testing.T) {
	want := []string{
		"minutes",
		"hourly",
		"daily/everyDays",
		"daily/everyWeekDay",
		"weekly",
		"monthly/specificDay",
		"monthly/specificWeekDay",
		"yearly/specificMonthDay",
		"yearly/specificMonthWeek",
	}
	got := make([]string, 0, len(patterns))
	for _, p := range patterns {
		got = append(got, p.name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pattern order = %v, want %v", got, want)
	}
}

func TestDecodeInto_NilSchedule(t *testing.T) {
	if _, err := DecodeInto("1 2 3 4 5", DefaultOptions(), nil); !errors.Is(err, ErrInvalidScheduleShape) {
		t.Errorf("expected ErrInvalidScheduleShape, got %v", err)
	}
}

func TestDecode_RepeatedSpaces(t *testing.T) {
	mode, s := mustDecode(t, "0  0 15 * *", DefaultOptions())
	if mode != ModeMonthly || s.Monthly.SpecificDay.Day != "15" {
		t.Errorf("got %s %+v", mode, s.Monthly.SpecificDay)
	}
}
