package datemath

import (
	"fmt"
	"time"
)

// Normalizer converts user supplied dates into the tracker timestamp format.
type Normalizer struct {
	location *time.Location
	now      func() time.Time
}

// NewNormalizer creates a normalizer whose "current time" is read in the given
// IANA timezone, e.g. "Europe/Lisbon". An empty timezone means the local zone.
func NewNormalizer(timezone string) (*Normalizer, error) {
	loc := time.Local
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &Normalizer{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of n that reads the current time from now.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	cp := *n
	cp.now = now
	return &cp
}

// Normalize parses text using layout and renders it as
// YYYY-MM-DDTHH:MM:SS.000+0000. The wall-clock value is kept as typed; the
// +0000 suffix is a literal. Empty text means the current time.
func (n *Normalizer) Normalize(text string, layout Layout) (string, error) {
	if !layout.Valid() {
		return "", fmt.Errorf("%w: unknown layout %q", ErrInvalidDate, string(layout))
	}
	if text == "" {
		return Format(n.current()), nil
	}

	t, err := time.Parse(string(layout), text)
	if err != nil {
		return "", fmt.Errorf("%w: %q does not match %s", ErrInvalidDate, text, layout.Hint())
	}
	return Format(t), nil
}

// Now renders the current time in layout, for pre-filling forms.
func (n *Normalizer) Now(layout Layout) string {
	return n.current().Format(string(layout))
}

func (n *Normalizer) current() time.Time {
	return n.now().In(n.location)
}

// Format renders the wall-clock fields of t in the tracker format.
func Format(t time.Time) string {
	return t.Format(TrackerLayout) + TrackerOffset
}

// ParseDayFirst parses a D/M/YYYY date (one or two digit day and month).
func ParseDayFirst(text string) (time.Time, error) {
	t, err := time.Parse(DayFirstLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidDate, text)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar date, comparing
// wall-clock fields only.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
