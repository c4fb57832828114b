package backup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/lysyi3m/funding-radar/app/funding"
)

var header = []string{
	"title",
	"link",
	"published_utc",
	"source",
	"company",
	"amount_value",
	"amount_currency",
	"stage",
	"inserted_at_utc",
}

// CSVLog is an append-only CSV mirror of stored records, keyed by link.
type CSVLog struct {
	path string
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

// Append writes the records whose link is not in the log yet and returns how many
// rows were written. Existing rows are never touched.
func (l *CSVLog) Append(records []funding.Record) int {
	seen, err := l.loadLinks()
	if err != nil {
		slog.Error("Failed to read backup log, using the links read so far", "path", l.path, "links", len(seen), "error", err)
	}

	needsHeader, err := l.isEmpty()
	if err != nil {
		slog.Error("Failed to inspect backup log", "path", l.path, "error", err)
		return 0
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		slog.Error("Failed to open backup log", "path", l.path, "error", err)
		return 0
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if needsHeader {
		if err := writeRow(writer, header); err != nil {
			slog.Error("Failed to write backup log header", "path", l.path, "error", err)
			return 0
		}
	}

	written := 0
	for _, record := range records {
		if _, ok := seen[record.Link]; ok {
			continue
		}

		if err := writeRow(writer, toRow(record)); err != nil {
			slog.Error("Failed to append to backup log", "path", l.path, "link", record.Link, "error", err)
			return written
		}

		seen[record.Link] = struct{}{}
		written++
	}

	return written
}

// loadLinks always returns a usable set. Malformed rows are skipped, and an
// unrecoverable read error returns the links collected before it.
func (l *CSVLog) loadLinks() (map[string]struct{}, error) {
	links := make(map[string]struct{})

	file, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return links, nil
	}
	if err != nil {
		return links, fmt.Errorf("failed to open backup log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	linkIdx := 1
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			slog.Warn("Skipping malformed backup log row", "path", l.path, "line", parseErr.StartLine, "error", err)
			first = false
			continue
		}
		if err != nil {
			return links, fmt.Errorf("failed to read backup log: %w", err)
		}

		if first {
			first = false
			if idx := slices.Index(row, "link"); idx >= 0 {
				linkIdx = idx
				continue
			}
		}

		if linkIdx < len(row) && row[linkIdx] != "" {
			links[row[linkIdx]] = struct{}{}
		}
	}

	return links, nil
}

func (l *CSVLog) isEmpty() (bool, error) {
	info, err := os.Stat(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return info.Size() == 0, nil
}

func writeRow(writer *csv.Writer, row []string) error {
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func toRow(record funding.Record) []string {
	var published, amount string
	if record.PublishedAt != nil {
		published = funding.FormatTimestamp(*record.PublishedAt)
	}
	if record.AmountValue != nil {
		amount = strconv.FormatFloat(*record.AmountValue, 'f', 2, 64)
	}

	return []string{
		record.Title,
		record.Link,
		published,
		record.Source,
		record.Company,
		amount,
		string(record.AmountCurrency),
		record.Stage,
		funding.FormatTimestamp(record.InsertedAt),
	}
}
