package feed

import (
	"time"
)

// Entry is a feed item as delivered by the source, before any interpretation.
type Entry struct {
	Title           string
	Link            string
	PublishedParsed *time.Time
	UpdatedParsed   *time.Time
	Published       string // raw text, used when the parsed form is missing
	Updated         string
}

// Configuration types

type Config struct {
	Name     string         // Derived from filename (without .yml extension); used as the record source
	URL      string         `yaml:"url"`
	Settings ConfigSettings `yaml:"settings"`
}

type ConfigSettings struct {
	Enabled  bool `yaml:"enabled"`
	Order    int  `yaml:"order"`     // processing position, lower first
	MaxItems int  `yaml:"max_items"` // 0 = no cap
	Timeout  int  `yaml:"timeout"`   // seconds
}

func (s ConfigSettings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.Timeout) * time.Second
}
