package cfg

const (
	CommandIngest = "ingest"
	CommandServe  = "serve"
)

type Cfg struct {
	// Storage
	DBPath     string
	BackupPath string

	// Ingestion
	FeedsDir  string
	MaxItems  int
	SinceDays int
	UserAgent string

	// Serve command
	Port     string
	Schedule string

	// Application metadata
	Command string
	Debug   bool
	Version string
}
