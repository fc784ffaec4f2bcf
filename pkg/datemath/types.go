package datemath

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is returned when text does not match the requested layout.
var ErrInvalidDate = errors.New("invalid date")

// Layout is one of the accepted input date layouts. The layouts are used by
// different entry points and are never tried interchangeably.
type Layout string

const (
	// LayoutDateTime is "YYYY-MM-DD HH:MM", used for single logs and bulk files.
	LayoutDateTime Layout = "2006-01-02 15:04"
	// LayoutTimeDate is "HH:MM DD-MM-YYYY", used for multi-issue logs.
	LayoutTimeDate Layout = "15:04 02-01-2006"

	// TrackerLayout is the timestamp layout the tracker expects, minus the
	// literal millisecond and offset suffix.
	TrackerLayout = "2006-01-02T15:04:05"
	// TrackerOffset is appended verbatim; milliseconds are always zero and no
	// timezone conversion happens.
	TrackerOffset = ".000+0000"

	// DayFirstLayout is the D/M/YYYY layout used by timesheet lookups.
	DayFirstLayout = "2/1/2006"
)

var layoutHints = map[Layout]string{
	LayoutDateTime: "YYYY-MM-DD HH:MM",
	LayoutTimeDate: "HH:MM DD-MM-YYYY",
}

// Hint returns the human readable form of the layout for error messages.
func (l Layout) Hint() string {
	if h, ok := layoutHints[l]; ok {
		return h
	}
	return string(l)
}

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool {
	_, ok := layoutHints[l]
	return ok
}

// ParseLayout maps a configuration name ("datetime" or "timedate") to a Layout.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "datetime":
		return LayoutDateTime, nil
	case "timedate":
		return LayoutTimeDate, nil
	}
	return "", fmt.Errorf("unknown date layout %q (want datetime or timedate)", name)
}
