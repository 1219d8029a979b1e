package deck

import (
	"fmt"
	"os"

	"github.com/fpang/gemini-deck-cli/internal/imgutil"
	"github.com/rs/zerolog/log"
)

// Assembler lays generated image artifacts out as a deck, one full-bleed
// image per slide, in request order. Artifacts that are missing on disk are
// skipped rather than aborting the whole assembly: a partial deck is an
// accepted outcome.
type Assembler struct {
	// JPEGQuality, when > 0, re-encodes each artifact as JPEG at this
	// quality before embedding. 0 embeds the raw PNG artifacts.
	JPEGQuality int

	// MaxDimension, when > 0, also downscales the longest image edge during
	// re-encode. Ignored unless JPEGQuality is set.
	MaxDimension int
}

// Assemble writes one slide per readable artifact path, in order, to a .pptx
// at outPath. Empty or unreadable paths are skipped with a log event only.
// Returns the number of slides actually written, which may be less than
// len(imagePaths).
func (a *Assembler) Assemble(imagePaths []string, outPath string) (int, error) {
	pres := NewPresentation()

	for i, path := range imagePaths {
		if path == "" {
			log.Debug().Int("slide", i+1).Msg("No artifact for slide, skipping")
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().
				Err(err).
				Int("slide", i+1).
				Str("path", path).
				Msg("Artifact missing at assembly time, skipping slide")
			continue
		}

		ext := "png"
		if a.JPEGQuality > 0 {
			jpegData, err := imgutil.RecompressJPEG(data, a.MaxDimension, a.JPEGQuality)
			if err != nil {
				log.Warn().
					Err(err).
					Int("slide", i+1).
					Msg("Recompression failed, embedding original image")
			} else {
				data = jpegData
				ext = "jpeg"
			}
		}

		pres.AddImageSlide(data, ext)
	}

	if err := pres.Save(outPath); err != nil {
		return 0, fmt.Errorf("failed to save presentation: %w", err)
	}

	log.Info().
		Str("output", outPath).
		Int("slides", pres.SlideCount()).
		Int("requested", len(imagePaths)).
		Msg("Presentation assembled")

	return pres.SlideCount(), nil
}
