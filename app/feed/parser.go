package feed

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) ([]Entry, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, p.normalizeItem(item))
	}

	return entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:           item.Title,
		Link:            item.Link,
		PublishedParsed: item.PublishedParsed,
		UpdatedParsed:   item.UpdatedParsed,
		Published:       item.Published,
		Updated:         item.Updated,
	}

	// Atom entries may only carry <link> elements in Links
	if len(item.Links) > 0 {
		entry.Link = cmp.Or(entry.Link, item.Links[0])
	}

	return entry
}
