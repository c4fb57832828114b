package feed

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Reference sources, used when the feeds directory holds no configuration.
var defaultFeeds = []struct {
	name string
	url  string
}{
	{"techcrunch", "https://techcrunch.com/startups/feed/"},
	{"eu-startups", "https://www.eu-startups.com/feed/"},
	{"venturebeat", "https://venturebeat.com/category/startups/feed/"},
	{"sifted", "https://sifted.eu/feed/"},
	{"crunchbase-news", "https://news.crunchbase.com/feed/"},
	{"businessinsider", "https://www.businessinsider.com/sai/rss"},
	{"eu-vc", "https://eu.vc/feed/"},
	{"hackernews", "http://news.ycombinator.com/rss"},
	{"firstround", "http://firstround.com/review/feed.xml"},
	{"onstartups", "http://feed.onstartups.com/onstartups"},
	{"bothsides", "https://bothsidesofthetable.com/feed"},
	{"steveblank", "http://steveblank.com/feed/"},
	{"benedictevans", "http://ben-evans.com/benedictevans?format=rss"},
	{"andrewchen", "http://andrewchen.co/feed/"},
	{"samaltman", "http://blog.samaltman.com/posts.atom"},
}

type ConfigCache struct {
	feedsDir string
	cache    map[string]*Config
	mu       sync.RWMutex
}

func NewConfigCache(feedsDir string) *ConfigCache {
	return &ConfigCache{
		feedsDir: feedsDir,
		cache:    make(map[string]*Config),
	}
}

func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.feedsDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.feedsDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		feedName := strings.TrimSuffix(filepath.Base(file), ".yml")

		config, err := cc.LoadConfig(feedName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Configuration loaded", "feed", feedName, "enabled", config.Settings.Enabled, "order", config.Settings.Order)
	}

	return nil
}

// LoadDefaults fills an empty cache with the reference feed list.
func (cc *ConfigCache) LoadDefaults() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if len(cc.cache) > 0 {
		return 0
	}
	for i, f := range defaultFeeds {
		cc.cache[f.name] = &Config{
			Name: f.name,
			URL:  f.url,
			Settings: ConfigSettings{
				Enabled: true,
				Order:   i,
				Timeout: 30,
			},
		}
	}
	return len(defaultFeeds)
}

func (cc *ConfigCache) LoadConfig(feedName string) (*Config, error) {
	configFile := cc.getConfigFilePath(feedName)
	feedConfig, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	feedConfig.Name = feedName

	if err := cc.validateConfig(feedConfig); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache[feedConfig.Name] = feedConfig

	return feedConfig, nil
}

func (cc *ConfigCache) GetConfig(feedName string) (*Config, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	feedConfig, ok := cc.cache[feedName]
	if !ok {
		return nil, fmt.Errorf("feed config with name '%s' not found", feedName)
	}
	return feedConfig, nil
}

// GetEnabledConfigs returns enabled feeds in processing order: by order setting,
// then by name.
func (cc *ConfigCache) GetEnabledConfigs() []*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	enabled := make([]*Config, 0, len(cc.cache))
	for _, v := range cc.cache {
		if v.Settings.Enabled {
			enabled = append(enabled, v)
		}
	}
	slices.SortFunc(enabled, func(a, b *Config) int {
		return cmp.Or(cmp.Compare(a.Settings.Order, b.Settings.Order), strings.Compare(a.Name, b.Name))
	})
	return enabled
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Feeds are enabled unless the file says otherwise
	feedConfig := Config{Settings: ConfigSettings{Enabled: true}}
	if err := yaml.Unmarshal(data, &feedConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if feedConfig.Settings.Timeout == 0 {
		feedConfig.Settings.Timeout = 30
	}

	return &feedConfig, nil
}

func (cc *ConfigCache) validateConfig(feedConfig *Config) error {
	if feedConfig == nil {
		return fmt.Errorf("feedConfig is nil")
	}

	if feedConfig.Name == "" {
		return fmt.Errorf("feed name is required")
	}
	if feedConfig.URL == "" {
		return fmt.Errorf("feed URL is required")
	}

	nonNegativeFields := map[string]int{
		"max items": feedConfig.Settings.MaxItems,
		"timeout":   feedConfig.Settings.Timeout,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	return nil
}

func (cc *ConfigCache) getConfigFilePath(feedName string) string {
	return filepath.Join(cc.feedsDir, feedName+".yml")
}
