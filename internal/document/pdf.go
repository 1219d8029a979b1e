package document

import (
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/rs/zerolog/log"
)

// Sentinel bodies stored when a page yields nothing usable. Downstream
// prompt building treats them like any other body text.
const (
	NoTextSentinel       = "[No text content]"
	ExtractErrorSentinel = "[Error extracting text]"
)

// ExtractPDF segments a PDF into per-page segments, at most maxPages of them,
// numbered from 1 in page order.
//
// A single page that fails extraction gets the error sentinel body and
// processing continues; a document that cannot be opened at all yields an
// empty slice rather than an error.
func ExtractPDF(path string, maxPages int) []Segment {
	doc, err := fitz.New(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to open PDF")
		return nil
	}
	defer doc.Close()

	totalPages := doc.NumPage()
	pageCount := totalPages
	if pageCount > maxPages {
		pageCount = maxPages
	}

	log.Info().
		Str("path", path).
		Int("total_pages", totalPages).
		Int("max_pages", maxPages).
		Msg("Extracting PDF pages")

	segments := make([]Segment, 0, pageCount)
	for page := 0; page < pageCount; page++ {
		text, err := doc.Text(page)
		if err != nil {
			log.Warn().
				Err(err).
				Int("page", page+1).
				Msg("Page extraction failed, storing sentinel and continuing")
			segments = append(segments, Segment{
				Ordinal: page + 1,
				Body:    ExtractErrorSentinel,
				Source:  SourcePaginated,
			})
			continue
		}

		body := text
		if strings.TrimSpace(body) == "" {
			body = NoTextSentinel
		}

		segments = append(segments, Segment{
			Ordinal: page + 1,
			Body:    body,
			Source:  SourcePaginated,
		})

		log.Debug().
			Int("page", page+1).
			Int("chars", len(body)).
			Msg("Extracted page text")
	}

	return segments
}
