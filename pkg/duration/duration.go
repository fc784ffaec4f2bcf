// Package duration parses free-text work durations such as "1h30m", "2h" or "90m".
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned for text outside the <digits>h<digits>m grammar
// or when both components are zero.
var ErrInvalidDuration = errors.New("invalid duration")

var pattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?$`)

// Duration is an elapsed time in whole hours and minutes. Minutes are not
// folded into hours: "90m" stays 0h90m.
type Duration struct {
	Hours   int
	Minutes int
}

// Parse parses text into a Duration. Surrounding whitespace is ignored.
func Parse(text string) (Duration, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Duration{}, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	m := pattern.FindStringSubmatch(trimmed)
	if m == nil || (m[1] == "" && m[2] == "") {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}

	var d Duration
	var err error
	if m[1] != "" {
		if d.Hours, err = strconv.Atoi(m[1]); err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
	}
	if m[2] != "" {
		if d.Minutes, err = strconv.Atoi(m[2]); err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
	}

	if d.IsZero() {
		return Duration{}, fmt.Errorf("%w: %q is zero", ErrInvalidDuration, text)
	}
	return d, nil
}

// IsZero reports whether both components are zero.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0
}

// String renders the canonical tracker text: the hour term only when
// non-zero, the minute term when non-zero or when there are no hours.
func (d Duration) String() string {
	var sb strings.Builder
	if d.Hours > 0 {
		sb.WriteString(strconv.Itoa(d.Hours))
		sb.WriteString("h")
	}
	if d.Minutes > 0 || d.Hours == 0 {
		sb.WriteString(strconv.Itoa(d.Minutes))
		sb.WriteString("m")
	}
	return sb.String()
}
