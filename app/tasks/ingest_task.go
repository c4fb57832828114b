package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/funding-radar/app/feed"
	"github.com/lysyi3m/funding-radar/app/funding"
)

// Summary holds the counters of one ingestion run.
type Summary struct {
	Feeds        int
	FeedFailures int
	Entries      int // entries considered after the per-feed cap
	Accepted     int
	Unique       int
	Inserted     int
	Appended     int
}

// IngestTask runs one pass over all feeds and writes the accepted records to both sinks.
type IngestTask struct {
	Task
	Summary Summary

	feeds      []*feed.Config
	fetcher    FeedFetcher
	parser     FeedParser
	normalizer *funding.Normalizer
	store      NewsStore
	backup     BackupLog
	maxItems   int
}

func NewIngestTask(feeds []*feed.Config, fetcher FeedFetcher, parser FeedParser,
	normalizer *funding.Normalizer, store NewsStore, backup BackupLog, maxItems int) *IngestTask {
	return &IngestTask{
		Task:       NewTask(TaskTypeIngest),
		feeds:      feeds,
		fetcher:    fetcher,
		parser:     parser,
		normalizer: normalizer,
		store:      store,
		backup:     backup,
		maxItems:   maxItems,
	}
}

func (t *IngestTask) Execute(ctx context.Context) error {
	var accepted []funding.Record

	for _, feedConfig := range t.feeds {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("ingestion interrupted: %w", err)
		}

		t.Summary.Feeds++

		entries, err := t.collect(ctx, feedConfig)
		if err != nil {
			t.Summary.FeedFailures++
			slog.Warn("Feed skipped", "feed", feedConfig.Name, "url", feedConfig.URL, "error", err)
			continue
		}

		if limit := t.itemLimit(feedConfig); limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		t.Summary.Entries += len(entries)

		kept := 0
		for _, entry := range entries {
			record, ok := t.normalizer.Normalize(entry, feedConfig.Name)
			if !ok {
				continue
			}
			accepted = append(accepted, record)
			kept++
		}

		slog.Debug("Feed processed", "feed", feedConfig.Name, "entries", len(entries), "accepted", kept)
	}

	unique := funding.Dedupe(accepted)
	t.Summary.Accepted = len(accepted)
	t.Summary.Unique = len(unique)

	t.Summary.Inserted = t.store.Persist(ctx, unique)
	t.Summary.Appended = t.backup.Append(unique)

	slog.Info("Task completed",
		"type", "Ingest",
		"duration", t.GetDuration(),
		"feeds", t.Summary.Feeds,
		"failed_feeds", t.Summary.FeedFailures,
		"entries", t.Summary.Entries,
		"accepted", t.Summary.Accepted,
		"unique", t.Summary.Unique,
		"inserted", t.Summary.Inserted,
		"appended", t.Summary.Appended)

	return nil
}

func (t *IngestTask) collect(ctx context.Context, feedConfig *feed.Config) ([]feed.Entry, error) {
	data, err := t.fetcher.Run(ctx, feedConfig.URL, feedConfig.Settings.GetTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	entries, err := t.parser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return entries, nil
}

// itemLimit prefers the run-wide cap over the feed's own; 0 means no cap.
func (t *IngestTask) itemLimit(feedConfig *feed.Config) int {
	if t.maxItems > 0 {
		return t.maxItems
	}
	return max(feedConfig.Settings.MaxItems, 0)
}
