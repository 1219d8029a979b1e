package document

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultMaxPages caps how many pages of a paginated document are segmented.
const DefaultMaxPages = 12

// Extract auto-detects the document kind by extension and runs the matching
// segmenter. Supported: .pdf (paginated) and .txt (delimited). Any other
// extension yields no segments.
//
// An empty result means either "nothing to extract" or "document unreadable";
// the distinction is surfaced only through log events. Callers treat zero
// segments as a hard stop for the document.
func Extract(path string, maxPages int) []Segment {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	ext := strings.ToLower(filepath.Ext(path))

	log.Info().
		Str("path", path).
		Str("ext", ext).
		Msg("Extracting document content")

	switch ext {
	case ".pdf":
		return ExtractPDF(path, maxPages)
	case ".txt":
		return ExtractText(path)
	default:
		log.Error().
			Str("path", path).
			Str("ext", ext).
			Msg("Unsupported document type, expected .pdf or .txt")
		return nil
	}
}
