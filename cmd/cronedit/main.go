// cronedit converts between cron expressions and the editor's per-mode
// schedule state from the command line.
//
//	cronedit decode "0 30 9 ? * MON,WED,FRI *" --dialect quartz
//	cronedit encode --file weekly.yaml
//	cronedit check "*/5 * * * *"
//
// decode prints the detected mode and the full state as YAML. encode reads
// the same YAML document (mode plus any subset of the schedule) and prints
// the canonical expression. check reports whether a robfig/cron scheduler
// accepts the expression.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/DEEJ4Y/cronedit"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var configPath, dialect, filePath string
	var use24, twelve, verbose bool

	flagSet := pflag.NewFlagSet("cronedit", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configPath, "config", "c", "", "YAML options file")
	flagSet.StringVar(&dialect, "dialect", "", "cron dialect: standard or quartz (overrides --config)")
	flagSet.BoolVar(&use24, "24h", false, "store hours as 0-23 (overrides --config)")
	flagSet.BoolVar(&twelve, "12h", false, "store hours as 1-12 with AM/PM (overrides --config)")
	flagSet.StringVarP(&filePath, "file", "f", "", "encode: read the schedule from this file instead of stdin")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log decode and encode steps to stderr")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := loadOptions(configPath)
	if err != nil {
		return err
	}
	if dialect != "" {
		opts.Dialect = cronedit.Dialect(dialect)
	}
	if use24 && twelve {
		return errors.New("--24h and --12h are mutually exclusive")
	}
	if use24 {
		opts.Use24HourTime = true
	}
	if twelve {
		opts.Use24HourTime = false
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return errors.New("missing command")
	}

	switch rest[0] {
	case "decode":
		if len(rest) != 2 {
			return errors.New("usage: cronedit decode EXPRESSION")
		}
		return decodeCmd(rest[1], opts, logger, stdout)
	case "encode":
		if len(rest) != 1 {
			return errors.New("usage: cronedit encode [--file PATH]")
		}
		input := stdin
		if filePath != "" {
			file, err := os.Open(filePath)
			if err != nil {
				return err
			}
			defer file.Close()
			input = file
		}
		return encodeCmd(input, opts, logger, stdout)
	case "check":
		if len(rest) != 2 {
			return errors.New("usage: cronedit check EXPRESSION")
		}
		if err := cronedit.Compatible(rest[1], opts.Dialect); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "ok")
		return nil
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

func loadOptions(path string) (cronedit.Options, error) {
	if path == "" {
		return cronedit.DefaultOptions(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return cronedit.Options{}, err
	}
	defer file.Close()
	return cronedit.LoadOptions(file)
}

func decodeCmd(expr string, opts cronedit.Options, logger *slog.Logger, stdout io.Writer) error {
	editor, err := cronedit.New(cronedit.Config{Options: opts, Logger: logger}, expr)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(editor.Snapshot()); err != nil {
		return err
	}
	return encoder.Close()
}

func encodeCmd(input io.Reader, opts cronedit.Options, logger *slog.Logger, stdout io.Writer) error {
	schedule, err := cronedit.DefaultSchedule(opts)
	if err != nil {
		return err
	}

	// Fields missing from the document keep their defaults
	snapshot := cronedit.Snapshot{Schedule: schedule}
	if err := yaml.NewDecoder(input).Decode(&snapshot); err != nil && err != io.EOF {
		return fmt.Errorf("failed to parse schedule: %w", err)
	}
	if snapshot.Mode == "" {
		return errors.New("schedule document has no mode")
	}

	cron, err := cronedit.Encode(snapshot.Schedule, snapshot.Mode, opts)
	if err != nil {
		return err
	}
	logger.Debug("encoded schedule", "mode", snapshot.Mode, "cron", cron)

	fmt.Fprintln(stdout, cron)
	return nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Usage: cronedit [flags] COMMAND

Commands:
  decode EXPRESSION   print the mode and schedule state as YAML
  encode              read a YAML schedule and print its expression
  check EXPRESSION    verify a robfig/cron scheduler accepts the expression

Flags:
%s`, flagSet.FlagUsages())
}
