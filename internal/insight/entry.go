// Package insight fetches, caches and presents AI-generated skill insights
// for the dashboard's hover tooltip and detail modal.
package insight

import (
	"fmt"
	"strings"
)

const (
	// FallbackSummary is cached in place of a summary when a fetch fails.
	FallbackSummary = "Info currently unavailable"

	// FallbackDetails is cached in place of details when a fetch fails.
	FallbackDetails = "Could not fetch details. Please try again later."
)

const detailsTemplate = "Detailed technical overview of %s:\n\n%s\n\n" +
	"Average salary boost: ~15-25%%\n" +
	"Learning resources: Official docs, Udemy courses, GitHub projects"

// Entry is the cached insight for one skill. It is never modified after
// it has been written to a Cache.
type Entry struct {
	Summary string
	Details string
}

// NewEntry builds the entry for a successful fetch. Details wrap the
// generated summary in a fixed intro and trailer.
func NewEntry(skill, summary string) Entry {
	return Entry{
		Summary: summary,
		Details: fmt.Sprintf(detailsTemplate, skill, summary),
	}
}

// FallbackEntry is the entry cached for a failed fetch.
func FallbackEntry() Entry {
	return Entry{Summary: FallbackSummary, Details: FallbackDetails}
}

// IsFallback reports whether e is the failure placeholder.
func (e Entry) IsFallback() bool {
	return e == FallbackEntry()
}

// DetailLines splits Details into display lines.
func (e Entry) DetailLines() []string {
	return strings.Split(e.Details, "\n")
}
