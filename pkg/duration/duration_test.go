package duration_test

import (
	"errors"
	"testing"

	"jira-worklog/pkg/duration"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    duration.Duration
		render  string
		wantErr bool
	}{
		{name: "hours and minutes", input: "1h10m", want: duration.Duration{Hours: 1, Minutes: 10}, render: "1h10m"},
		{name: "hours only", input: "2h", want: duration.Duration{Hours: 2}, render: "2h"},
		{name: "minutes only", input: "45m", want: duration.Duration{Minutes: 45}, render: "45m"},
		{name: "minutes above an hour", input: "90m", want: duration.Duration{Minutes: 90}, render: "90m"},
		{name: "zero hours", input: "0h30m", want: duration.Duration{Minutes: 30}, render: "30m"},
		{name: "zero minutes", input: "3h0m", want: duration.Duration{Hours: 3}, render: "3h"},
		{name: "surrounding whitespace", input: "  1h5m\t", want: duration.Duration{Hours: 1, Minutes: 5}, render: "1h5m"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "garbage", input: "xyz", wantErr: true},
		{name: "both zero", input: "0h0m", wantErr: true},
		{name: "zero minutes only", input: "0m", wantErr: true},
		{name: "uppercase unit", input: "1H", wantErr: true},
		{name: "inner whitespace", input: "1h 30m", wantErr: true},
		{name: "wrong order", input: "30m1h", wantErr: true},
		{name: "bare number", input: "30", wantErr: true},
		{name: "days unit", input: "1d", wantErr: true},
		{name: "overflow", input: "99999999999999999999h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := duration.Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, duration.ErrInvalidDuration) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidDuration", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if s := got.String(); s != tt.render {
				t.Errorf("String() = %q, want %q", s, tt.render)
			}
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{"1h", "1m", "1h1m", "12h59m", "0h15m", "120m", "7h0m"}
	for _, in := range inputs {
		d, err := duration.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		again, err := duration.Parse(d.String())
		if err != nil {
			t.Fatalf("re-parse of %q (%q): %v", in, d.String(), err)
		}
		if again != d {
			t.Errorf("round trip of %q = %+v, want %+v", in, again, d)
		}
	}
}
