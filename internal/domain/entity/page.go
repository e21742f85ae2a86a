package entity

import "time"

// PageSnapshot is what the page looked like at a given moment, kept for
// diagnosing failed flows.
type PageSnapshot struct {
	URL        string
	Title      string
	Text       string
	Screenshot *Screenshot
	TakenAt    time.Time
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
