package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/funding-radar/app/funding"
)

const insertNewsSQL = `
	INSERT OR IGNORE INTO news (
		title, link, published_utc, source, company,
		amount_value, amount_currency, stage, inserted_at_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type NewsRepo struct {
	db *sql.DB
}

func NewNewsRepository(db *DB) *NewsRepo {
	return &NewsRepo{db: db.DB}
}

// Persist writes records whose link is not stored yet and returns how many were
// inserted. A failing record is logged and skipped.
func (r *NewsRepo) Persist(ctx context.Context, records []funding.Record) int {
	inserted := 0
	for _, record := range records {
		ok, err := r.insert(ctx, record)
		if err != nil {
			slog.Error("Failed to store news item", "link", record.Link, "source", record.Source, "error", err)
			continue
		}
		if ok {
			inserted++
		}
	}
	return inserted
}

func (r *NewsRepo) insert(ctx context.Context, record funding.Record) (bool, error) {
	var published sql.NullString
	if record.PublishedAt != nil {
		published = sql.NullString{String: funding.FormatTimestamp(*record.PublishedAt), Valid: true}
	}

	var amount sql.NullFloat64
	if record.AmountValue != nil {
		amount = sql.NullFloat64{Float64: *record.AmountValue, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, insertNewsSQL,
		record.Title,
		record.Link,
		published,
		record.Source,
		nullString(record.Company),
		amount,
		nullString(string(record.AmountCurrency)),
		nullString(record.Stage),
		funding.FormatTimestamp(record.InsertedAt),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert news item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// ListNews returns stored items newest first. Undated items always pass the date filter.
func (r *NewsRepo) ListNews(ctx context.Context, filter NewsFilter) ([]NewsItem, error) {
	var clauses []string
	var args []any

	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, filter.Source)
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "(published_utc IS NULL OR published_utc >= ?)")
		args = append(args, funding.FormatTimestamp(filter.Since))
	}

	query := `
		SELECT title, link, published_utc, source, company,
		       amount_value, amount_currency, stage
		FROM news`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY COALESCE(published_utc, '') DESC, id DESC LIMIT ?"
	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	items := []NewsItem{}
	for rows.Next() {
		var item NewsItem
		var published, company, currency, stage sql.NullString
		var amount sql.NullFloat64

		err := rows.Scan(
			&item.Title, &item.Link, &published, &item.Source, &company,
			&amount, &currency, &stage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}

		item.PublishedUTC = stringPtr(published)
		item.Company = stringPtr(company)
		item.AmountCurrency = stringPtr(currency)
		item.Stage = stringPtr(stage)
		if amount.Valid {
			item.AmountValue = &amount.Float64
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}

	return items, nil
}

func (r *NewsRepo) CountNews(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}
	return count, nil
}

func (r *NewsRepo) CountBySource(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT source, COUNT(*) FROM news GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to count news by source: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		counts[source] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source counts: %w", err)
	}

	return counts, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
