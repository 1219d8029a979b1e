package prompt

import (
	"strings"

	"github.com/fpang/gemini-deck-cli/internal/document"
	"github.com/rs/zerolog/log"
)

// Defaults for the generated image geometry. 16:9 at 2K matches the slide
// canvas the assembler lays out.
const (
	DefaultAspectRatio = "16:9"
	DefaultResolution  = "2K"
)

// PromptBodyLimit caps how much segment body text is interpolated into a
// prompt. Segments can carry up to 10,000 characters; the model only needs
// the head of that to frame the visual.
const PromptBodyLimit = 1000

// GenerationRequest is a fully resolved description of one desired image.
// For a fixed field tuple the canonical form (and therefore the cache
// digest) is stable: requests are values and never mutated after Build.
type GenerationRequest struct {
	Title           string
	Visual          VisualType
	BodyText        string
	StyleDirectives []string
	AspectRatio     string
	Resolution      string
}

// CanonicalString renders the request in its canonical, order-sensitive
// form. Reordering style directives yields a different canonical string:
// distinct directive framing must map to distinct cached artifacts.
func (r GenerationRequest) CanonicalString() string {
	var b strings.Builder
	b.WriteString("title:")
	b.WriteString(r.Title)
	b.WriteString("\ntype:")
	b.WriteString(string(r.Visual))
	b.WriteString("\nbody:")
	b.WriteString(r.BodyText)
	for _, d := range r.StyleDirectives {
		b.WriteString("\ndirective:")
		b.WriteString(d)
	}
	b.WriteString("\naspect:")
	b.WriteString(r.AspectRatio)
	b.WriteString("\nresolution:")
	b.WriteString(r.Resolution)
	return b.String()
}

// Prompt renders the full text sent to the image model.
func (r GenerationRequest) Prompt() string {
	var b strings.Builder
	b.WriteString("Create a premium professional infographic:\n\n")
	b.WriteString("TITLE: \"")
	b.WriteString(r.Title)
	b.WriteString("\"\n\nDIAGRAM TYPE: ")
	b.WriteString(string(r.Visual))
	b.WriteString("\n\n")
	b.WriteString(r.BodyText)
	b.WriteString("\n\nMANDATORY STYLE DIRECTIVES:\n")
	for _, d := range r.StyleDirectives {
		b.WriteString("- ")
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("\nFormat: ")
	b.WriteString(r.AspectRatio)
	b.WriteString(" aspect ratio, ")
	b.WriteString(r.Resolution)
	b.WriteString(" resolution, suitable for a full-bleed presentation slide.")
	return b.String()
}

// Builder maps segments to generation requests. It is pure: the same
// builder produces the same request for the same segment every time.
type Builder struct {
	archetypes map[int]Archetype
	style      Style
}

// NewBuilder creates a Builder with an explicit ordinal-to-archetype table
// and a resolved style. A nil table uses DefaultArchetypes. The table is
// treated as immutable after construction.
func NewBuilder(archetypes map[int]Archetype, style Style) *Builder {
	if archetypes == nil {
		archetypes = DefaultArchetypes()
	}
	return &Builder{archetypes: archetypes, style: style}
}

// Build derives the generation request for one segment. Unmapped ordinals
// use the generic archetype. The body text is always the archetype's
// narrative framing wrapped around the segment content, never the raw body.
func (b *Builder) Build(seg document.Segment) GenerationRequest {
	arch, ok := b.archetypes[seg.Ordinal]
	if !ok {
		arch = Generic
	}

	title := strings.TrimSpace(seg.Title)
	if title == "" {
		title = arch.Headline
	}

	body := truncateRunes(seg.Body, PromptBodyLimit)

	framed := arch.frame(title, body)
	if arch.Notes != "" {
		framed += "\n\nLAYOUT NOTES: " + arch.Notes
	}

	log.Debug().
		Int("ordinal", seg.Ordinal).
		Str("archetype", arch.Name).
		Str("style", b.style.Name).
		Str("title", title).
		Msg("Built generation request")

	return GenerationRequest{
		Title:           title,
		Visual:          arch.Visual,
		BodyText:        framed,
		StyleDirectives: b.style.Directives,
		AspectRatio:     DefaultAspectRatio,
		Resolution:      DefaultResolution,
	}
}

// truncateRunes cuts body to at most limit characters. The cut never splits
// a multi-byte rune, so the result is always a character-prefix of the input.
func truncateRunes(body string, limit int) string {
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
