package main

import (
	"os"

	"github.com/fpang/gemini-deck-cli/internal/generate"
	"github.com/spf13/cobra"
)

// CLI flags
var (
	inputFlag        string
	outputDirFlag    string
	styleFlag        string
	modelFlag        string
	maxPagesFlag     int
	slidesFlag       int
	pagesFlag        []int
	cacheDirFlag     string
	noCacheFlag      bool
	maxAttemptsFlag  int
	jpegQualityFlag  int
	maxDimensionFlag int
)

// rootCmd is the main Cobra command for the doc2deck CLI.
var rootCmd = &cobra.Command{
	Use:   "doc2deck",
	Short: "AI-generated infographic decks from PDF and text documents",
	Long: `doc2deck converts a source document into a deck of AI-generated infographic
slides. The document is segmented into slide units (PDF pages or SLIDE-marked
text sections), each unit becomes a structured visual prompt, Gemini renders
one image per prompt, and the images are assembled into a .pptx with one
full-bleed image per slide.

Generated images are cached by prompt digest, so re-running the same document
with the same style reuses previous results instead of calling the API again.

Examples:
  doc2deck --input brief.pdf
  doc2deck -i roadmap.txt -s colorful
  doc2deck -i deck.txt --pages 2,3,9 --style minimal
  doc2deck -i brief.pdf --max-pages 8 --no-cache
  doc2deck -i brief.pdf --jpeg-quality 85
  doc2deck  # Picks the first document in ./input, or prompts for a path`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input document (.pdf or .txt); default: first document in ./input")
	rootCmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "output", "Directory for the generated .pptx")
	rootCmd.Flags().StringVarP(&styleFlag, "style", "s", "", "Style template: professional, colorful, minimal (default: generic)")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", generate.DefaultModelName, "Gemini image model to use")
	rootCmd.Flags().IntVar(&maxPagesFlag, "max-pages", 12, "Maximum PDF pages to segment")
	rootCmd.Flags().IntVar(&slidesFlag, "slides", 0, "Maximum slides to generate (0 = all segments)")
	rootCmd.Flags().IntSliceVar(&pagesFlag, "pages", nil, "Only generate slides for these ordinals (empty = all)")
	rootCmd.Flags().StringVar(&cacheDirFlag, "cache-dir", ".infographic_cache", "Directory for cached and per-run images")
	rootCmd.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the generation cache (always call the API)")
	rootCmd.Flags().IntVar(&maxAttemptsFlag, "max-attempts", generate.DefaultMaxAttempts, "Generation attempts per slide before giving up")
	rootCmd.Flags().IntVar(&jpegQualityFlag, "jpeg-quality", 0, "Re-encode slide images as JPEG at this quality before embedding (0 = keep PNG)")
	rootCmd.Flags().IntVar(&maxDimensionFlag, "max-dimension", 0, "Downscale longest image edge to this many pixels during re-encode (0 = keep size)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
