package dto

type QuoteOutput struct {
	Text   string
	Author string
}

type SummaryOutput struct {
	Date string
	Text string
}
