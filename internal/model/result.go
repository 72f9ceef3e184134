package model

import "time"

// Result is the outcome of extracting one listing title
type Result struct {
	Title       string         `json:"title"`                 // Original listing title
	Source      string         `json:"source,omitempty"`      // URL the title came from, if fetched
	ExtractedAt time.Time      `json:"extracted_at"`          // When extraction ran
	Tokens      []string       `json:"tokens,omitempty"`      // Token sequence fed to the engine
	Attributes  FlatAttributes `json:"attributes"`            // Numbered-key attribute map
}
