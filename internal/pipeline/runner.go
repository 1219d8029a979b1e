package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fpang/gemini-deck-cli/internal/document"
	"github.com/fpang/gemini-deck-cli/internal/generate"
	"github.com/fpang/gemini-deck-cli/internal/prompt"
	"github.com/rs/zerolog/log"
)

// Generator resolves one generation request to a result. Satisfied by
// *generate.Orchestrator; tests substitute fakes that record calls.
type Generator interface {
	Generate(ctx context.Context, req prompt.GenerationRequest, useCache bool) generate.Result
}

// SlideWriter assembles ordered artifact paths into a deck file. Satisfied
// by *deck.Assembler.
type SlideWriter interface {
	Assemble(imagePaths []string, outPath string) (int, error)
}

// Summary reports what one pipeline run produced.
type Summary struct {
	Requested     int
	Generated     int
	SlidesWritten int
	OutputPath    string
}

// Runner drives the whole pipeline for one document: segments → requests →
// generated artifacts → assembled deck. Processing is strictly sequential
// in document order; a failed request contributes no artifact and never
// stops the requests after it.
type Runner struct {
	Builder     *prompt.Builder
	Generator   Generator
	Writer      SlideWriter
	ArtifactDir string
	UseCache    bool
	RunID       string
}

// Run generates one image per segment and assembles the deck at outPath.
// Returns an error only for run-level problems (no segments, unwritable
// artifact dir, assembly failure); per-request failures are absorbed into
// the summary counts.
func (r *Runner) Run(ctx context.Context, segments []document.Segment, outPath string) (Summary, error) {
	if len(segments) == 0 {
		return Summary{}, fmt.Errorf("no segments to process")
	}
	if err := os.MkdirAll(r.ArtifactDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("failed to create artifact directory: %w", err)
	}

	summary := Summary{Requested: len(segments)}

	// One artifact path per request, in request order. Failed requests keep
	// an empty entry so assembly order matches request order regardless of
	// which requests succeeded.
	artifactPaths := make([]string, len(segments))

	for i, seg := range segments {
		req := r.Builder.Build(seg)

		log.Info().
			Int("slide", i+1).
			Int("total", len(segments)).
			Str("title", req.Title).
			Str("visual", string(req.Visual)).
			Msg("Generating slide image")

		result := r.Generator.Generate(ctx, req, r.UseCache)
		if !result.OK() {
			log.Warn().
				Int("slide", i+1).
				Str("title", req.Title).
				Str("reason", string(result.Reason)).
				Str("last_attempt", string(result.LastAttempt)).
				Msg("Slide image generation failed, continuing with next slide")
			continue
		}

		path := filepath.Join(r.ArtifactDir, fmt.Sprintf("slide_%d_%s.png", i+1, r.RunID))
		if err := os.WriteFile(path, result.Image, 0o644); err != nil {
			log.Warn().
				Err(err).
				Int("slide", i+1).
				Str("path", path).
				Msg("Failed to write slide artifact, slide will be skipped")
			continue
		}

		artifactPaths[i] = path
		summary.Generated++
	}

	written, err := r.Writer.Assemble(artifactPaths, outPath)
	if err != nil {
		return summary, fmt.Errorf("failed to assemble presentation: %w", err)
	}
	summary.SlidesWritten = written
	summary.OutputPath = outPath

	log.Info().
		Int("requested", summary.Requested).
		Int("generated", summary.Generated).
		Int("slides_written", summary.SlidesWritten).
		Str("output", summary.OutputPath).
		Msg("Pipeline run complete")

	return summary, nil
}
