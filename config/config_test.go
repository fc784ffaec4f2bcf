package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	t.Setenv("JIRA_PAT", "secret")

	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: staging\n"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Environment.Name != "staging" {
		t.Errorf("environment = %q", cfg.Environment.Name)
	}
	if cfg.Jira.PAT != "secret" {
		t.Errorf("pat = %q", cfg.Jira.PAT)
	}
	if cfg.Jira.MaxResults != 100 || cfg.Jira.SubmitWorkers != 1 || cfg.Jira.Timeout != 30*time.Second {
		t.Errorf("jira = %+v", cfg.Jira)
	}
	if cfg.Tracker.Source != TrackerSourceExcel || cfg.Tracker.SheetName != "Daily" || cfg.Tracker.DateColumn != "Days" {
		t.Errorf("tracker = %+v", cfg.Tracker)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	t.Setenv("JIRA_PAT", "secret")
	t.Setenv("JIRA_URL", "https://jira.example.com/")
	t.Setenv("LOGGER_OUTPUT_PATHS", "stdout, /tmp/worklog.log")

	cfg, err := LoadFile(writeConfig(t, `
jira:
  submit_workers: 8
  requests_per_second: 2.5
  timezone: Europe/Lisbon
tracker:
  source: gsheets
  spreadsheet_id: abc
  credentials_path: creds.json
`))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Jira.URL != "https://jira.example.com" {
		t.Errorf("url = %q", cfg.Jira.URL)
	}
	if cfg.Jira.SubmitWorkers != 8 || cfg.Jira.RequestsPerSecond != 2.5 {
		t.Errorf("jira = %+v", cfg.Jira)
	}
	if got := strings.Join(cfg.Logger.OutputPaths, "|"); got != "stdout|/tmp/worklog.log" {
		t.Errorf("output paths = %q", got)
	}
}

func TestLoadFileFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		pat     string
		body    string
		wantErr string
	}{
		{"MissingPAT", "", "", "jira.pat"},
		{"RelativeURL", "x", "jira:\n  url: jira.local\n", "jira.url"},
		{"ZeroWorkers", "x", "jira:\n  submit_workers: 0\n", "submit_workers"},
		{"BadTimezone", "x", "jira:\n  timezone: Mars/Olympus\n", "timezone"},
		{"GSheetsWithoutID", "x", "tracker:\n  source: gsheets\n", "spreadsheet_id"},
		{"UnknownSource", "x", "tracker:\n  source: csv\n", "tracker.source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JIRA_PAT", tt.pat)
			_, err := LoadFile(writeConfig(t, tt.body+"environment:\n  name: test\n"))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile() error = nil for a missing explicit file")
	}
}
