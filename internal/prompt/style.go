package prompt

import "github.com/rs/zerolog/log"

// Style is a named set of mandatory visual directives. Every style is a
// complete, self-sufficient prescription: palettes never overlap between
// styles and no style is expressed as a diff against another.
type Style struct {
	Name       string
	Directives []string
}

// The built-in styles. Directive order matters downstream: the cache digest
// covers directives in order, so these lists are fixed.
var (
	StyleProfessional = Style{
		Name: "professional",
		Directives: []string{
			"Use only this palette: navy blue, slate gray, white",
			"Flat, minimal corporate layout with crisp rectangular panels",
			"No gradients",
			"No colors outside the named palette",
		},
	}

	StyleColorful = Style{
		Name: "colorful",
		Directives: []string{
			"Use only this palette: vivid orange, magenta, teal, bright yellow",
			"Bold, vibrant layout with strong contrast and large shapes",
			"No pastel or muted tones",
			"No colors outside the named palette",
		},
	}

	StyleMinimal = Style{
		Name: "minimal",
		Directives: []string{
			"Use only this palette: black, white, one red accent",
			"Sparse layout with generous white space and thin line work",
			"No decorative icons",
			"No gradients",
			"No colors outside the named palette",
		},
	}

	// StyleGeneric is the fallback when no style (or an unknown one) is named.
	StyleGeneric = Style{
		Name: "generic",
		Directives: []string{
			"Clean professional layout",
			"Legible typography with good contrast",
		},
	}
)

// ResolveStyle maps a style name to its directive set. Unknown names fall
// back to the generic set rather than failing.
func ResolveStyle(name string) Style {
	switch name {
	case StyleProfessional.Name:
		return StyleProfessional
	case StyleColorful.Name:
		return StyleColorful
	case StyleMinimal.Name:
		return StyleMinimal
	case "", StyleGeneric.Name:
		return StyleGeneric
	default:
		log.Warn().Str("style", name).Msg("Unknown style template, using generic directives")
		return StyleGeneric
	}
}
