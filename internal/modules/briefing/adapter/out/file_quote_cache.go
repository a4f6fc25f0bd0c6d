package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rovi/internal/modules/briefing/domain"
	briefingout "rovi/internal/modules/briefing/port/out"
)

type cachedQuote struct {
	Day    string `json:"day"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// FileQuoteCache keeps only the latest day's quote; writing a new day
// replaces the old entry.
type FileQuoteCache struct {
	path string
}

func NewFileQuoteCache(dataDir string) briefingout.QuoteCache {
	return &FileQuoteCache{path: filepath.Join(dataDir, "quote_of_the_day.json")}
}

func (c *FileQuoteCache) Get(_ context.Context, day string) (domain.Quote, bool, error) {
	payload, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Quote{}, false, nil
		}
		return domain.Quote{}, false, fmt.Errorf("read quote cache: %w", err)
	}
	cached := cachedQuote{}
	if err := json.Unmarshal(payload, &cached); err != nil {
		return domain.Quote{}, false, fmt.Errorf("decode quote cache: %w", err)
	}
	if cached.Day != day {
		return domain.Quote{}, false, nil
	}
	return domain.Quote{Text: cached.Text, Author: cached.Author}, true, nil
}

func (c *FileQuoteCache) Put(_ context.Context, day string, quote domain.Quote) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	payload, err := json.MarshalIndent(cachedQuote{Day: day, Text: quote.Text, Author: quote.Author}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quote cache: %w", err)
	}
	if err := os.WriteFile(c.path, payload, 0o644); err != nil {
		return fmt.Errorf("write quote cache: %w", err)
	}
	return nil
}
