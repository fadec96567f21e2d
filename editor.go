package cronedit

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Config holds the configuration for an Editor.
type Config struct {
	// Options is the immutable host configuration. An empty Dialect or
	// DefaultTime takes the DefaultOptions value.
	Options Options

	// Event Handlers (all optional)

	// OnChange is called with the canonical expression after every encode
	// triggered by a mode switch, a field edit or a reconfiguration. It is
	// not called during New and never after a decode.
	OnChange func(cron string)

	// OnError is called when an operation fails.
	// If OnError is not set, errors are only returned to the caller.
	OnError func(err error)

	// Logger receives debug records for decode and encode steps.
	// Default: discards everything
	Logger *slog.Logger
}

// echoState guards against decoding an expression this editor just
// published and the host handed straight back.
type echoState int

const (
	idle echoState = iota
	awaitingOwnEcho
)

// Editor owns the schedule state of one cron editing session and keeps it
// consistent with the canonical expression.
//
// An Editor is not safe for concurrent use; it must be confined to one
// goroutine at a time.
type Editor struct {
	config   Config
	opts     Options
	schedule *Schedule
	mode     Mode
	cron     string
	echo     echoState
	disabled bool
	ready    bool
	logger   *slog.Logger

	subscription Subscription
}

// New creates an Editor from cfg and the host-supplied initial expression.
//
// The expression is decoded into the matching mode. If it is empty, or the
// mode it decodes to is hidden, the first visible mode is selected. The
// state is then encoded once; the resulting canonical expression is available
// through Cron but OnChange is not called.
func New(config Config, cron string) (*Editor, error) {
	opts := config.Options.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Tabs()) == 0 {
		return nil, ErrNoEnabledMode
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	schedule, err := DefaultSchedule(opts)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		config:   config,
		opts:     opts,
		schedule: schedule,
		logger:   logger,
	}

	if cron != "" {
		if err := e.decode(cron); err != nil {
			return nil, fmt.Errorf("failed to decode initial expression: %w", err)
		}
	}

	// Make sure a selectable mode is active
	if !slices.Contains(opts.Tabs(), e.mode) {
		e.mode = opts.Tabs()[0]
	}

	if _, err := e.regenerate(); err != nil {
		return nil, err
	}
	e.ready = true

	return e, nil
}

// Cron returns the canonical expression.
func (e *Editor) Cron() string {
	return e.cron
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Schedule returns the live schedule state. Mutations must go through
// Update to keep the expression consistent.
func (e *Editor) Schedule() *Schedule {
	return e.schedule
}

// Options returns the configuration in effect.
func (e *Editor) Options() Options {
	return e.opts
}

// Tabs returns the selectable modes in display order.
func (e *Editor) Tabs() []Mode {
	return e.opts.Tabs()
}

// SelectedTab returns the index of the active mode in Tabs.
func (e *Editor) SelectedTab() int {
	return slices.Index(e.opts.Tabs(), e.mode)
}

// Snapshot returns a copy of the mode, the expression and the state.
func (e *Editor) Snapshot() Snapshot {
	schedule := *e.schedule
	return Snapshot{Mode: e.mode, Cron: e.cron, Schedule: &schedule}
}

// SetDisabled toggles whether mode switches are accepted.
func (e *Editor) SetDisabled(disabled bool) {
	e.disabled = disabled
}

// Disabled reports whether the editor refuses mode switches.
func (e *Editor) Disabled() bool {
	return e.disabled
}

// SetMode activates mode and republishes the expression.
func (e *Editor) SetMode(mode Mode) (string, error) {
	if e.disabled {
		return "", e.fail(ErrDisabled)
	}
	if !slices.Contains(e.opts.Tabs(), mode) {
		return "", e.fail(fmt.Errorf("%w: %q", ErrModeUnavailable, mode))
	}

	previous := e.mode
	e.mode = mode
	cron, err := e.regenerate()
	if err != nil {
		e.mode = previous
		return "", err
	}
	return cron, nil
}

// SelectTab activates the mode at index in Tabs.
func (e *Editor) SelectTab(index int) (string, error) {
	tabs := e.opts.Tabs()
	if index < 0 || index >= len(tabs) {
		return "", e.fail(fmt.Errorf("%w: tab index %d", ErrModeUnavailable, index))
	}
	return e.SetMode(tabs[index])
}

// Update applies fn to the schedule state and republishes the expression.
// If the edited state cannot be encoded the edit is rolled back.
func (e *Editor) Update(fn func(s *Schedule)) (string, error) {
	previous := *e.schedule
	fn(e.schedule)

	cron, err := e.regenerate()
	if err != nil {
		*e.schedule = previous
		return "", err
	}
	return cron, nil
}

// SetCron replaces the canonical expression from outside.
//
// When the editor has just published cron itself, the call is its own echo
// and is ignored. Otherwise the expression is decoded into the state.
func (e *Editor) SetCron(cron string) error {
	if e.echo == awaitingOwnEcho {
		e.echo = idle
		if cron == e.cron {
			e.logger.Debug("skipping decode of own expression", "cron", cron)
			return nil
		}
	}

	if err := e.decode(cron); err != nil {
		return e.fail(err)
	}
	e.cron = cron
	return nil
}

// Reconfigure swaps the options, for example to change dialect, and
// republishes the expression for the active mode. Stored times of day are
// converted when the hour convention changes.
func (e *Editor) Reconfigure(opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return "", e.fail(err)
	}
	if len(opts.Tabs()) == 0 {
		return "", e.fail(ErrNoEnabledMode)
	}

	previous, previousSchedule, previousMode := e.opts, *e.schedule, e.mode
	if opts.Use24HourTime != previous.Use24HourTime {
		e.schedule.convertClocks(previous.Use24HourTime, opts.Use24HourTime)
	}
	e.opts = opts
	if !slices.Contains(opts.Tabs(), e.mode) {
		e.mode = opts.Tabs()[0]
	}

	cron, err := e.regenerate()
	if err != nil {
		e.opts, *e.schedule, e.mode = previous, previousSchedule, previousMode
		return "", err
	}
	return cron, nil
}

// Attach subscribes to src so that every expression it publishes replaces
// the current one. Only one source can be attached; attaching again releases
// the previous subscription.
func (e *Editor) Attach(src Source) {
	e.release()
	e.subscription = src.Subscribe(func(cron string) {
		// Errors were already reported through OnError
		_ = e.SetCron(cron)
	})
}

// Close releases the attached source, if any.
func (e *Editor) Close() error {
	e.release()
	return nil
}

// Save stores the current expression under name.
func (e *Editor) Save(ctx context.Context, store ScheduleStore, name string) error {
	record := &Record{
		Name:      name,
		Cron:      e.cron,
		Mode:      e.mode,
		Dialect:   e.opts.Dialect,
		UpdatedAt: time.Now(),
	}
	if err := store.Save(ctx, record); err != nil {
		return e.fail(fmt.Errorf("failed to save schedule %q: %w", name, err))
	}
	return nil
}

// Restore loads the expression stored under name and decodes it.
func (e *Editor) Restore(ctx context.Context, store ScheduleStore, name string) error {
	record, err := store.Load(ctx, name)
	if err != nil {
		return e.fail(fmt.Errorf("failed to load schedule %q: %w", name, err))
	}
	e.echo = idle
	return e.SetCron(record.Cron)
}

// decode replaces the state from cron. Nothing is published.
func (e *Editor) decode(cron string) error {
	schedule := *e.schedule
	mode, err := DecodeInto(cron, e.opts, &schedule)
	if err != nil {
		return err
	}

	*e.schedule = schedule
	e.mode = mode
	e.logger.Debug("decoded expression", "cron", cron, "mode", mode)
	return nil
}

// regenerate encodes the state for the active mode and publishes it.
func (e *Editor) regenerate() (string, error) {
	cron, err := Encode(e.schedule, e.mode, e.opts)
	if err != nil {
		return "", e.fail(err)
	}

	e.echo = awaitingOwnEcho
	e.cron = cron
	e.logger.Debug("encoded schedule", "mode", e.mode, "cron", cron)

	if e.ready && e.config.OnChange != nil {
		e.config.OnChange(cron)
	}
	return cron, nil
}

func (e *Editor) release() {
	if e.subscription != nil {
		e.subscription.Unsubscribe()
		e.subscription = nil
	}
}

// fail reports err through OnError and returns it.
func (e *Editor) fail(err error) error {
	if e.config.OnError != nil {
		e.config.OnError(err)
	}
	return err
}
