package document

// SourceKind identifies which segmentation strategy produced a Segment.
type SourceKind string

const (
	// SourcePaginated marks segments extracted page-by-page from a binary
	// paginated document (PDF).
	SourcePaginated SourceKind = "paginated"

	// SourceDelimited marks segments parsed from a delimited text document.
	SourceDelimited SourceKind = "delimited"
)

// MaxBodyChars is the hard cap on a delimited-text segment body. Longer
// bodies are prefix-truncated, never sliced elsewhere.
const MaxBodyChars = 10000

// Segment is one slide-worthy unit of document content. Segments are
// immutable once produced by a segmenter.
//
// Ordinal is the unit number as declared in (or inferred from) the source.
// It is a label, not a position: a delimited document may declare ordinals
// out of sequence or repeat them, and the segmenter preserves that.
type Segment struct {
	Ordinal int
	Title   string
	Body    string
	Source  SourceKind
}

// ContentStore is the ordered collection of segments extracted from one
// document. Order follows document position regardless of ordinal values.
type ContentStore struct {
	segments []Segment
}

// NewContentStore wraps an ordered segment slice produced by a segmenter.
func NewContentStore(segments []Segment) *ContentStore {
	return &ContentStore{segments: segments}
}

// Segments returns all segments in document order.
func (s *ContentStore) Segments() []Segment {
	return s.segments
}

// Len reports the number of segments in the store.
func (s *ContentStore) Len() int {
	return len(s.segments)
}

// Select returns the segments whose ordinal appears in the given set,
// preserving document order. An empty set selects every segment.
func (s *ContentStore) Select(ordinals []int) []Segment {
	if len(ordinals) == 0 {
		return s.segments
	}

	wanted := make(map[int]bool, len(ordinals))
	for _, n := range ordinals {
		wanted[n] = true
	}

	var selected []Segment
	for _, seg := range s.segments {
		if wanted[seg.Ordinal] {
			selected = append(selected, seg)
		}
	}
	return selected
}

// truncateBody enforces the body cap as a character-prefix cut. The limit
// counts runes, so a multi-byte rune at the boundary is kept or dropped
// whole, never split.
func truncateBody(body string, limit int) string {
	if len(body) <= limit {
		return body
	}
	n := 0
	for i := range body {
		if n == limit {
			return body[:i]
		}
		n++
	}
	return body
}
