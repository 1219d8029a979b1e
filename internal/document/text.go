package document

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultTitle is used when a text document has no slide markers at all and
// is treated as one single segment.
const DefaultTitle = "Document Content"

// slideMarker matches one boundary line: the case-insensitive token "SLIDE",
// an integer ordinal, a dash-family separator (hyphen, en-dash, or em-dash),
// and a single-line title. Documents that conform segment identically across
// implementations, so the pattern is part of the input contract.
var slideMarker = regexp.MustCompile(`(?i)SLIDE\s+(\d+)\s*[-–—]\s*([^\n]+)`)

// ExtractText segments a delimited text document on SLIDE boundary markers.
//
// All markers are matched in one pass in document order. Each segment's body
// runs from just after its marker to the start of the next marker (or end of
// document), trimmed and prefix-truncated to MaxBodyChars. Ordinals come from
// the matched numeral, so they may repeat or skip; nothing is deduplicated or
// reordered. A document with no markers becomes a single segment with
// ordinal 1 and the whole (truncated) text as body.
func ExtractText(path string) []Segment {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read text document")
		return nil
	}

	return SegmentText(string(raw))
}

// SegmentText applies the delimited-text segmentation rules to already-loaded
// document text.
func SegmentText(fullText string) []Segment {
	matches := slideMarker.FindAllStringSubmatchIndex(fullText, -1)

	if len(matches) == 0 {
		log.Info().Msg("No SLIDE sections found, treating entire document as one segment")
		return []Segment{{
			Ordinal: 1,
			Title:   DefaultTitle,
			Body:    truncateBody(fullText, MaxBodyChars),
			Source:  SourceDelimited,
		}}
	}

	log.Info().Int("sections", len(matches)).Msg("Found SLIDE sections")

	segments := make([]Segment, 0, len(matches))
	for i, m := range matches {
		// m holds pair offsets: full match, ordinal group, title group.
		ordinal, err := strconv.Atoi(fullText[m[2]:m[3]])
		if err != nil {
			// The group is \d+ so this only fires on overflow-sized numerals.
			log.Warn().
				Str("numeral", fullText[m[2]:m[3]]).
				Msg("Skipping SLIDE marker with unparseable ordinal")
			continue
		}
		title := strings.TrimSpace(fullText[m[4]:m[5]])

		bodyStart := m[1]
		bodyEnd := len(fullText)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := strings.TrimSpace(fullText[bodyStart:bodyEnd])

		segments = append(segments, Segment{
			Ordinal: ordinal,
			Title:   title,
			Body:    truncateBody(body, MaxBodyChars),
			Source:  SourceDelimited,
		})

		log.Debug().
			Int("ordinal", ordinal).
			Str("title", title).
			Int("body_chars", len(body)).
			Msg("Extracted SLIDE section")
	}

	return segments
}
