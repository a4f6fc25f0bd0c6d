package domain_test

import (
	"testing"

	"rovi/internal/modules/briefing/domain"
)

func TestParseQuoteSplitsAtFirstSeparator(t *testing.T) {
	t.Parallel()
	q := domain.ParseQuote(`"Stay hungry, stay foolish." — Steve Jobs`)
	if q.Text != "Stay hungry, stay foolish." {
		t.Fatalf("unexpected text: %q", q.Text)
	}
	if q.Author != "Steve Jobs" {
		t.Fatalf("unexpected author: %q", q.Author)
	}

	q = domain.ParseQuote("a — b — c")
	if q.Text != "a" || q.Author != "b — c" {
		t.Fatalf("must split at first separator only: %+v", q)
	}
}

func TestParseQuoteWithoutSeparator(t *testing.T) {
	t.Parallel()
	q := domain.ParseQuote(`“Keep going.”`)
	if q.Text != "Keep going." || q.Author != "Unknown" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestParseQuoteEmptyAuthor(t *testing.T) {
	t.Parallel()
	q := domain.ParseQuote("Never settle. —  ")
	if q.Text != "Never settle." || q.Author != "Unknown" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}
