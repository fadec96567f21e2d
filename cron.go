package cronedit

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

var quartzParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Compatible reports whether a robfig/cron scheduler can run expr.
//
// Standard expressions are parsed as-is. Quartz expressions are parsed with
// the seconds field; a year field is only accepted when it is "*", since
// robfig has no year field. Quartz-only tokens (L, W, #) are outside the
// robfig grammar and are reported as incompatible.
func Compatible(expr string, dialect Dialect) error {
	switch dialect {
	case Standard, "":
		if _, err := cron.ParseStandard(expr); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrIncompatible, expr, err)
		}
		return nil

	case Quartz:
		fields := strings.Fields(expr)
		if len(fields) == 7 {
			if fields[6] != "*" {
				return fmt.Errorf("%w: %q: year field %q", ErrIncompatible, expr, fields[6])
			}
			fields = fields[:6]
		}
		if len(fields) != 6 {
			return fmt.Errorf("%w: %s expression %q has %d fields, want 6 or 7", ErrInvalidFieldCount, dialect, expr, len(strings.Fields(expr)))
		}
		if _, err := quartzParser.Parse(strings.Join(fields, " ")); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrIncompatible, expr, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidOptions, dialect)
	}
}
