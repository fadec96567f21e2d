package cronedit

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		input := `
dialect: quartz
use24HourTime: false
defaultTime: "09:30:00"
hideAdvancedTab: true
`
		opts, err := LoadOptions(strings.NewReader(input))
		if err != nil {
			t.Fatalf("LoadOptions: %v", err)
		}
		want := Options{
			Dialect:         Quartz,
			Use24HourTime:   false,
			DefaultTime:     "09:30:00",
			HideAdvancedTab: true,
		}
		if opts != want {
			t.Errorf("got %+v, want %+v", opts, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		opts, err := LoadOptions(strings.NewReader(""))
		if err != nil {
			t.Fatalf("LoadOptions: %v", err)
		}
		if opts != DefaultOptions() {
			t.Errorf("got %+v, want defaults", opts)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := LoadOptions(strings.NewReader("dialect: [")); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		inputs := []string{
			"dialect: unix",
			"defaultTime: 9:30",
			`defaultTime: "24:00:00"`,
			`defaultTime: "12:60:00"`,
			`defaultTime: "aa:00:00"`,
		}
		for _, input := range inputs {
			if _, err := LoadOptions(strings.NewReader(input)); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("LoadOptions(%q) error = %v, want ErrInvalidOptions", input, err)
			}
		}
	})
}

func TestOptions_Tabs(t *testing.T) {
	opts := DefaultOptions()
	if got := opts.Tabs(); !reflect.DeepEqual(got, AllModes) {
		t.Errorf("Tabs() = %v, want %v", got, AllModes)
	}

	opts.HideMinutesTab = true
	opts.HideWeeklyTab = true
	want := []Mode{ModeHourly, ModeDaily, ModeMonthly, ModeYearly, ModeAdvanced}
	if got := opts.Tabs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tabs() = %v, want %v", got, want)
	}
}

func TestDefaultSchedule_DefaultTime(t *testing.T) {
	opts := DefaultOptions()
	opts.DefaultTime = "18:45:30"

	s := mustDefaultSchedule(t, opts)
	want := Clock{Hours: 18, Minutes: 45, Seconds: 30}
	if s.Weekly.Clock != want {
		t.Errorf("24h clock = %+v, want %+v", s.Weekly.Clock, want)
	}

	opts.Use24HourTime = false
	s = mustDefaultSchedule(t, opts)
	want = Clock{Hours: 6, HourType: PM, Minutes: 45, Seconds: 30}
	if s.Yearly.SpecificMonthDay.Clock != want {
		t.Errorf("12h clock = %+v, want %+v", s.Yearly.SpecificMonthDay.Clock, want)
	}
}
