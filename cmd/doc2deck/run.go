package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/gemini-deck-cli/internal/cli"
	"github.com/fpang/gemini-deck-cli/internal/deck"
	"github.com/fpang/gemini-deck-cli/internal/document"
	"github.com/fpang/gemini-deck-cli/internal/generate"
	"github.com/fpang/gemini-deck-cli/internal/logging"
	"github.com/fpang/gemini-deck-cli/internal/pipeline"
	"github.com/fpang/gemini-deck-cli/internal/prompt"
)

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	// .env is optional; flags and real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}
	logging.Init()

	startTime := time.Now()

	// Determine and validate the input document
	inputPath := inputFlag
	if inputPath == "" {
		inputPath = cli.FindInputDocument("input")
	}
	if inputPath == "" {
		inputPath = cli.PromptForInput()
	}
	if inputPath == "" {
		log.Fatal().Msg("No input document. Pass --input or place a .pdf/.txt in ./input")
	}
	inputPath = cli.ValidateAndResolveInput(inputPath)

	style := prompt.ResolveStyle(styleFlag)

	logging.NewStartupLogger("doc2deck").
		Config("input", inputPath).
		Config("output_dir", outputDirFlag).
		Config("style", style.Name).
		Config("model", modelFlag).
		Config("cache_dir", cacheDirFlag).
		Config("max_pages", strconv.Itoa(maxPagesFlag)).
		Config("max_attempts", strconv.Itoa(maxAttemptsFlag)).
		Feature("cache", !noCacheFlag).
		Feature("recompress", jpegQualityFlag > 0).
		Log()

	// Segment the document. Zero segments is a hard stop: it means the
	// document was missing, unreadable, unsupported, or empty.
	segments := document.Extract(inputPath, maxPagesFlag)
	if len(segments) == 0 {
		log.Fatal().Str("input", inputPath).Msg("No content extracted from document")
	}

	store := document.NewContentStore(segments)
	selected := store.Select(pagesFlag)
	if slidesFlag > 0 && len(selected) > slidesFlag {
		selected = selected[:slidesFlag]
	}
	if len(selected) == 0 {
		log.Fatal().
			Ints("pages", pagesFlag).
			Msg("Page selection matched no segments")
	}

	log.Info().
		Int("extracted", store.Len()).
		Int("selected", len(selected)).
		Msg("Document segmented")

	// Initialize Gemini client (validates the API key once, up front)
	ctx, client := cli.InitGeminiClient()

	cache, err := generate.NewDiskCache(cacheDirFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize generation cache")
	}

	orchestrator := generate.New(
		generate.NewGeminiModel(client, modelFlag),
		cache,
		generate.Config{MaxAttempts: maxAttemptsFlag},
	)

	runner := &pipeline.Runner{
		Builder:   prompt.NewBuilder(nil, style),
		Generator: orchestrator,
		Writer: &deck.Assembler{
			JPEGQuality:  jpegQualityFlag,
			MaxDimension: maxDimensionFlag,
		},
		ArtifactDir: cache.Dir(),
		UseCache:    !noCacheFlag,
		RunID:       pipeline.NewRunID("deck-"),
	}

	outPath := filepath.Join(outputDirFlag, outputFileName(inputPath))
	if err := ensureDir(outputDirFlag); err != nil {
		log.Fatal().Err(err).Str("dir", outputDirFlag).Msg("Failed to create output directory")
	}

	summary, err := runner.Run(ctx, selected, outPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Pipeline run failed")
	}

	log.Info().
		Str("output", summary.OutputPath).
		Int("slides", summary.SlidesWritten).
		Int("requested", summary.Requested).
		Str("elapsed", cli.FormatDurationShort(time.Since(startTime))).
		Msg("Deck generated")

	fmt.Printf("\nDeck written: %s (%d/%d slides)\n",
		summary.OutputPath, summary.SlidesWritten, summary.Requested)
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// outputFileName derives the deck name from the input document stem.
func outputFileName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return "Generated_from_" + stem + ".pptx"
}
