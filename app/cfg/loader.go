package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type ingestCmd struct{}

type serveCmd struct {
	Port     string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	Schedule string `long:"schedule" env:"SCHEDULE" description:"Cron expression for scheduled ingestion (optional, e.g. \"0 * * * *\")"`
}

type rawCfg struct {
	// Storage
	DBPath     string `long:"db-path" env:"DB_PATH" default:"data/vc_tool.db" description:"SQLite database file"`
	BackupPath string `long:"backup-path" env:"BACKUP_PATH" default:"data/news_clean.csv" description:"CSV backup log file"`

	// Ingestion
	FeedsDir  string `long:"feeds-dir" env:"FEEDS_DIR" default:"./feeds" description:"Directory containing feed configuration files"`
	MaxItems  int    `long:"max-items" env:"MAX_ITEMS" default:"0" description:"Maximum entries considered per feed (0 = feed setting or no cap)"`
	SinceDays int    `long:"since-days" env:"SINCE_DAYS" default:"90" description:"Recency window in days (0 = no window)"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Funding Radar/1.0" description:"User agent string for HTTP requests"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Ingest ingestCmd `command:"ingest" description:"Run one ingestion pass (default)"`
	Serve  serveCmd  `command:"serve" description:"Serve the news query API, optionally ingesting on a schedule"`
}

// Load parses the command line and environment. It returns nil without error when
// help was requested.
func Load() (*Cfg, error) {
	return parse(os.Args[1:])
}

func parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.SubcommandsOptional = true

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.MaxItems < 0 {
		return nil, fmt.Errorf("max items must be non-negative, got %d", raw.MaxItems)
	}
	if raw.SinceDays < 0 {
		return nil, fmt.Errorf("since days must be non-negative, got %d", raw.SinceDays)
	}

	command := CommandIngest
	if parser.Active != nil {
		command = parser.Active.Name
	}

	cfg := &Cfg{
		DBPath:     raw.DBPath,
		BackupPath: raw.BackupPath,
		FeedsDir:   raw.FeedsDir,
		MaxItems:   raw.MaxItems,
		SinceDays:  raw.SinceDays,
		UserAgent:  raw.UserAgent,
		Command:    command,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	if command == CommandServe {
		cfg.Port = raw.Serve.Port
		cfg.Schedule = raw.Serve.Schedule
	}

	return cfg, nil
}
