package cronedit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dialect selects the cron field layout.
type Dialect string

const (
	// Standard is the classic 5-field layout:
	// minute hour day-of-month month day-of-week.
	Standard Dialect = "standard"

	// Quartz adds a leading seconds field and a trailing year field, and uses
	// "?" as the "don't care" day token.
	Quartz Dialect = "quartz"
)

// dayDefaultChar is the token written into a day-of-month or day-of-week
// field that is not constrained.
func (d Dialect) dayDefaultChar() string {
	if d == Quartz {
		return "?"
	}
	return "*"
}

// validFieldCount reports whether n fields are acceptable input for d.
func (d Dialect) validFieldCount(n int) bool {
	if d == Quartz {
		return n == 6 || n == 7
	}
	return n == 5
}

func (d Dialect) valid() bool {
	return d == Standard || d == Quartz
}

// Options holds the immutable configuration supplied by the host.
type Options struct {
	// Dialect selects field count and the "?"/"*" convention.
	// Default: Standard
	Dialect Dialect `yaml:"dialect"`

	// Use24HourTime stores hours as 0-23. When false, hours are stored as
	// 1-12 together with an AM/PM tag.
	Use24HourTime bool `yaml:"use24HourTime"`

	// DefaultTime seeds the time-of-day of freshly defaulted modes.
	// Format HH:MM:SS. Default: "00:00:00"
	DefaultTime string `yaml:"defaultTime"`

	// Tab visibility. Hidden modes cannot be selected through the editor but
	// still encode and decode normally.
	HideMinutesTab  bool `yaml:"hideMinutesTab"`
	HideHourlyTab   bool `yaml:"hideHourlyTab"`
	HideDailyTab    bool `yaml:"hideDailyTab"`
	HideWeeklyTab   bool `yaml:"hideWeeklyTab"`
	HideMonthlyTab  bool `yaml:"hideMonthlyTab"`
	HideYearlyTab   bool `yaml:"hideYearlyTab"`
	HideAdvancedTab bool `yaml:"hideAdvancedTab"`

	// Sub-mode visibility, presentation only.
	HideSpecificWeekDayTab   bool `yaml:"hideSpecificWeekDayTab"`
	HideSpecificMonthWeekTab bool `yaml:"hideSpecificMonthWeekTab"`

	// HideSeconds is presentation only: quartz output always carries seconds.
	HideSeconds bool `yaml:"hideSeconds"`
}

// DefaultOptions returns the options used when the host supplies none.
func DefaultOptions() Options {
	return Options{
		Dialect:       Standard,
		Use24HourTime: true,
		DefaultTime:   "00:00:00",
	}
}

// LoadOptions decodes YAML options from r on top of DefaultOptions.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && err != io.EOF {
		return Options{}, fmt.Errorf("failed to parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the dialect and the default time.
func (o Options) Validate() error {
	if !o.Dialect.valid() {
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidOptions, o.Dialect)
	}
	if _, _, _, err := o.defaultClock(); err != nil {
		return err
	}
	return nil
}

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() Options {
	if o.Dialect == "" {
		o.Dialect = Standard
	}
	if o.DefaultTime == "" {
		o.DefaultTime = "00:00:00"
	}
	return o
}

// defaultClock splits DefaultTime into 24h hour, minute and second.
func (o Options) defaultClock() (hours, minutes, seconds int, err error) {
	parts := strings.Split(o.DefaultTime, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: defaultTime %q is not HH:MM:SS", ErrInvalidOptions, o.DefaultTime)
	}

	values := make([]int, 3)
	limits := []int{23, 59, 59}
	for i, part := range parts {
		v, convErr := strconv.Atoi(part)
		if convErr != nil || v < 0 || v > limits[i] {
			return 0, 0, 0, fmt.Errorf("%w: defaultTime %q is not HH:MM:SS", ErrInvalidOptions, o.DefaultTime)
		}
		values[i] = v
	}
	return values[0], values[1], values[2], nil
}

// Tabs returns the selectable modes in display order.
func (o Options) Tabs() []Mode {
	hidden := map[Mode]bool{
		ModeMinutes:  o.HideMinutesTab,
		ModeHourly:   o.HideHourlyTab,
		ModeDaily:    o.HideDailyTab,
		ModeWeekly:   o.HideWeeklyTab,
		ModeMonthly:  o.HideMonthlyTab,
		ModeYearly:   o.HideYearlyTab,
		ModeAdvanced: o.HideAdvancedTab,
	}

	tabs := make([]Mode, 0, len(AllModes))
	for _, mode := range AllModes {
		if !hidden[mode] {
			tabs = append(tabs, mode)
		}
	}
	return tabs
}
