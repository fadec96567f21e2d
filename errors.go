package cronedit

import "errors"

var (
	// ErrInvalidFieldCount is returned by the decoder when an expression does
	// not have the number of fields its dialect requires.
	ErrInvalidFieldCount = errors.New("invalid cron field count")

	// ErrInvalidScheduleShape is returned by the encoder when the active mode
	// or sub-mode tag is not one it knows how to lay out.
	ErrInvalidScheduleShape = errors.New("invalid schedule shape")

	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("invalid options")
)

var (
	// ErrModeUnavailable is returned when selecting a hidden or unknown mode.
	ErrModeUnavailable = errors.New("mode is not available")

	// ErrNoEnabledMode is returned when options hide every mode.
	ErrNoEnabledMode = errors.New("every mode is hidden")

	// ErrDisabled is returned when switching modes on a disabled editor.
	ErrDisabled = errors.New("editor is disabled")
)

var (
	// ErrRecordNotFound is returned by stores when no record has the name.
	ErrRecordNotFound = errors.New("schedule record not found")

	// ErrIncompatible is returned by Compatible when robfig/cron rejects an
	// expression.
	ErrIncompatible = errors.New("expression not accepted by robfig/cron")
)
