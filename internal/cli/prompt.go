package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// FindInputDocument looks for the first .pdf or .txt file in dir, PDFs
// first, names sorted for a stable pick. Returns "" when dir holds neither.
func FindInputDocument(dir string) string {
	for _, pattern := range []string{"*.pdf", "*.txt"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		log.Info().Str("path", matches[0]).Msg("Found input document")
		return matches[0]
	}
	return ""
}

// PromptForInput prompts the user interactively for an input document path.
// Returns an empty string if the user enters nothing.
func PromptForInput() string {
	fmt.Print("Input document (.pdf or .txt): ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read input")
		return ""
	}

	return strings.TrimSpace(input)
}
