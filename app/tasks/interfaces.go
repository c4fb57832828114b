package tasks

import (
	"context"
	"time"

	"github.com/lysyi3m/funding-radar/app/backup"
	"github.com/lysyi3m/funding-radar/app/database"
	"github.com/lysyi3m/funding-radar/app/feed"
	"github.com/lysyi3m/funding-radar/app/funding"
)

type FeedFetcher interface {
	Run(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

type FeedParser interface {
	Run(data []byte) ([]feed.Entry, error)
}

// NewsStore is the relational sink; Persist returns the number of new links written.
type NewsStore interface {
	Persist(ctx context.Context, records []funding.Record) int
}

// BackupLog is the flat-file sink; Append returns the number of rows written.
type BackupLog interface {
	Append(records []funding.Record) int
}

// TaskSchedulerInterface is used by the main application to run ingestion on a schedule.
//
//	scheduler, err := NewScheduler("0 * * * *", newIngestTask)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
}

var (
	_ FeedFetcher            = (*feed.Fetcher)(nil)
	_ FeedParser             = (*feed.Parser)(nil)
	_ NewsStore              = (*database.NewsRepo)(nil)
	_ BackupLog              = (*backup.CSVLog)(nil)
	_ TaskSchedulerInterface = (*Scheduler)(nil)
)
