package domain

import "strings"

// Quote is a motivational line with attribution.
type Quote struct {
	Text   string
	Author string
}

// Fallback is shown when the text-generation service cannot supply a quote.
func Fallback() Quote {
	return Quote{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"}
}

// ParseQuote splits generated text at the first em dash separator into quote
// and author, trimming surrounding quote marks. Text without a separator
// gets the whole line and an unknown author.
func ParseQuote(raw string) Quote {
	raw = strings.TrimSpace(raw)
	text, author, found := strings.Cut(raw, "—")
	if !found {
		return Quote{Text: trimQuoteMarks(raw), Author: "Unknown"}
	}
	q := Quote{Text: trimQuoteMarks(text), Author: strings.TrimSpace(author)}
	if q.Author == "" {
		q.Author = "Unknown"
	}
	return q
}

func trimQuoteMarks(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'“”‘’")
}
