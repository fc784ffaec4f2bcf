package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Tracker backends for the timesheet lookup.
const (
	TrackerSourceNone    = "none"
	TrackerSourceExcel   = "excel"
	TrackerSourceGSheets = "gsheets"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Issue tracker
	Jira JiraConfig

	// Spreadsheet time tracker
	Tracker TrackerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	OutputPaths  []string
}

type JiraConfig struct {
	URL               string
	PAT               string
	MaxResults        int
	Timeout           time.Duration
	SubmitWorkers     int
	RequestsPerSecond float64
	Timezone          string // empty means the host zone
}

type TrackerConfig struct {
	Source          string
	FilePath        string
	SheetName       string
	DateColumn      string
	SpreadsheetID   string
	CredentialsPath string
	TokenPath       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/worklog/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/worklog/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.OutputPaths = splitList(v.Get("logger.output_paths"))

	// Jira
	cfg.Jira.URL = strings.TrimRight(v.GetString("jira.url"), "/")
	cfg.Jira.PAT = v.GetString("jira.pat")
	cfg.Jira.MaxResults = v.GetInt("jira.max_results")
	cfg.Jira.Timeout = v.GetDuration("jira.timeout")
	cfg.Jira.SubmitWorkers = v.GetInt("jira.submit_workers")
	cfg.Jira.RequestsPerSecond = v.GetFloat64("jira.requests_per_second")
	cfg.Jira.Timezone = v.GetString("jira.timezone")

	// Tracker
	cfg.Tracker.Source = strings.ToLower(v.GetString("tracker.source"))
	cfg.Tracker.FilePath = v.GetString("tracker.file_path")
	cfg.Tracker.SheetName = v.GetString("tracker.sheet_name")
	cfg.Tracker.DateColumn = v.GetString("tracker.date_column")
	cfg.Tracker.SpreadsheetID = v.GetString("tracker.spreadsheet_id")
	cfg.Tracker.CredentialsPath = v.GetString("tracker.credentials_path")
	cfg.Tracker.TokenPath = v.GetString("tracker.token_path")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 60)
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("jira.url", "https://jira.critical.pt")
	v.SetDefault("jira.max_results", 100)
	v.SetDefault("jira.timeout", "30s")
	v.SetDefault("jira.submit_workers", 1)
	v.SetDefault("jira.requests_per_second", 0)

	v.SetDefault("tracker.source", TrackerSourceExcel)
	v.SetDefault("tracker.file_path", "BSP-G2_Daily_Tracker.xlsx")
	v.SetDefault("tracker.sheet_name", "Daily")
	v.SetDefault("tracker.date_column", "Days")
	v.SetDefault("tracker.token_path", "token.json")
}

// validate fails fast on settings every shell depends on.
func (cfg *Config) validate() error {
	if cfg.Jira.URL == "" {
		return errors.New("jira.url is required")
	}
	u, err := url.Parse(cfg.Jira.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("jira.url %q is not an absolute URL", cfg.Jira.URL)
	}
	if cfg.Jira.PAT == "" {
		return errors.New("jira.pat is required (set JIRA_PAT)")
	}
	if cfg.Jira.SubmitWorkers <= 0 {
		return fmt.Errorf("jira.submit_workers must be positive, got %d", cfg.Jira.SubmitWorkers)
	}
	if cfg.Jira.MaxResults <= 0 {
		return fmt.Errorf("jira.max_results must be positive, got %d", cfg.Jira.MaxResults)
	}
	if cfg.Jira.Timeout <= 0 {
		return fmt.Errorf("jira.timeout must be positive, got %s", cfg.Jira.Timeout)
	}
	if cfg.Jira.RequestsPerSecond < 0 {
		return fmt.Errorf("jira.requests_per_second must not be negative, got %v", cfg.Jira.RequestsPerSecond)
	}
	if cfg.Jira.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Jira.Timezone); err != nil {
			return fmt.Errorf("jira.timezone: %w", err)
		}
	}

	switch cfg.Tracker.Source {
	case TrackerSourceNone, "":
	case TrackerSourceExcel:
		if cfg.Tracker.FilePath == "" {
			return errors.New("tracker.file_path is required for the excel source")
		}
	case TrackerSourceGSheets:
		if cfg.Tracker.SpreadsheetID == "" || cfg.Tracker.CredentialsPath == "" {
			return errors.New("tracker.spreadsheet_id and tracker.credentials_path are required for the gsheets source")
		}
	default:
		return fmt.Errorf("tracker.source %q is not one of excel, gsheets, none", cfg.Tracker.Source)
	}

	return nil
}

// splitList accepts a YAML list or a comma separated env string.
func splitList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case []any:
		for _, it := range val {
			items = append(items, fmt.Sprint(it))
		}
	case []string:
		items = val
	case string:
		items = strings.Split(val, ",")
	}

	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
