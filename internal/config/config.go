package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"petjobs-engine/internal/domain"
)

// SeedRequest is a sample request loaded at startup.
type SeedRequest struct {
	Job      string `yaml:"job" json:"job"`
	Date     string `yaml:"date" json:"date"`
	Location string `yaml:"location" json:"location"`
	Details  string `yaml:"details" json:"details"`
	TimeSlot string `yaml:"time_slot" json:"timeSlot"`
}

func (r SeedRequest) Draft() domain.Draft {
	return domain.Draft{
		Job:      r.Job,
		Date:     r.Date,
		Location: r.Location,
		Details:  r.Details,
		TimeSlot: r.TimeSlot,
	}
}

type Config struct {
	App struct {
		Host     string `yaml:"host" json:"host"`
		Port     int    `yaml:"port" json:"port"`
		DataDir  string `yaml:"data_dir" json:"dataDir"`
		LogLevel string `yaml:"log_level" json:"logLevel"`
	} `yaml:"app" json:"app"`

	Catalog domain.Catalog `yaml:"catalog" json:"catalog"`

	Seed struct {
		Enabled  bool          `yaml:"enabled" json:"enabled"`
		Requests []SeedRequest `yaml:"requests" json:"requests"`
	} `yaml:"seed" json:"seed"`

	Limits struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requestsPerSecond"`
		Burst             int     `yaml:"burst" json:"burst"`
	} `yaml:"limits" json:"limits"`

	Events struct {
		HeartbeatSeconds int `yaml:"heartbeat_seconds" json:"heartbeatSeconds"`
	} `yaml:"events" json:"events"`
}

// Default is the configuration used for keys a file leaves out.
func Default() Config {
	var cfg Config
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 38472
	cfg.App.DataDir = "."
	cfg.App.LogLevel = "info"
	cfg.Catalog = domain.DefaultCatalog()
	cfg.Seed.Enabled = true
	cfg.Seed.Requests = []SeedRequest{
		{
			Job:      "Dog Walk (30 min)",
			Date:     "2026-08-09",
			Location: "Vancouver, BC",
			Details:  "Please bring my pet Howdy for a walk, thank you!",
			TimeSlot: "1PM - 3PM",
		},
		{
			Job:      "Dog Wash (1 hr)",
			Date:     "2026-10-18",
			Location: "Burnaby, BC",
			Details:  "Please bath my pet Kiki and keep her clean during the session, thank you!",
			TimeSlot: "3PM - 5PM",
		},
	}
	cfg.Limits.RequestsPerSecond = 20
	cfg.Limits.Burst = 40
	cfg.Events.HeartbeatSeconds = 25
	return cfg
}

// Load reads a yaml file over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// ApplyEnv overrides file values with PETJOBS_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PETJOBS_DATA_DIR")); v != "" {
		cfg.App.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PETJOBS_HOST")); v != "" {
		cfg.App.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("PETJOBS_PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := strings.TrimSpace(os.Getenv("PETJOBS_LOG_LEVEL")); v != "" {
		cfg.App.LogLevel = v
	}
}

func (c Config) SeedDrafts() []domain.Draft {
	if !c.Seed.Enabled {
		return nil
	}
	out := make([]domain.Draft, 0, len(c.Seed.Requests))
	for _, r := range c.Seed.Requests {
		out = append(out, r.Draft())
	}
	return out
}
