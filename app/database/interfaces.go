package database

import (
	"context"

	"github.com/lysyi3m/funding-radar/app/funding"
)

type NewsRepository interface {
	Persist(ctx context.Context, records []funding.Record) int

	ListNews(ctx context.Context, filter NewsFilter) ([]NewsItem, error)
	CountNews(ctx context.Context) (int, error)
	CountBySource(ctx context.Context) (map[string]int, error)
}

var _ NewsRepository = (*NewsRepo)(nil)
