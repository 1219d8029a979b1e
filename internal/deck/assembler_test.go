package deck

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeArtifact drops a decodable PNG artifact into dir and returns its path.
func writeArtifact(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

func slideParts(t *testing.T, pptxPath string) []string {
	t.Helper()

	zr, err := zip.OpenReader(pptxPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer zr.Close()

	var slides []string
	for _, f := range zr.File {
		if filepath.Dir(f.Name) == "ppt/slides" {
			slides = append(slides, f.Name)
		}
	}
	return slides
}

func TestAssembleAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeArtifact(t, dir, "slide_1.png", color.RGBA{R: 255, A: 255}),
		writeArtifact(t, dir, "slide_2.png", color.RGBA{G: 255, A: 255}),
	}
	out := filepath.Join(dir, "deck.pptx")

	a := &Assembler{}
	n, err := a.Assemble(paths, out)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Assemble() = %d slides, want 2", n)
	}
	if got := len(slideParts(t, out)); got != 2 {
		t.Errorf("package has %d slide parts, want 2", got)
	}
}

func TestAssembleSkipsMissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeArtifact(t, dir, "slide_1.png", color.RGBA{B: 255, A: 255}),
		"",
		filepath.Join(dir, "never_written.png"),
		writeArtifact(t, dir, "slide_4.png", color.RGBA{R: 128, A: 255}),
	}
	out := filepath.Join(dir, "deck.pptx")

	a := &Assembler{}
	n, err := a.Assemble(paths, out)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Assemble() = %d slides, want 2", n)
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pptx")

	a := &Assembler{}
	n, err := a.Assemble(nil, out)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if n != 0 {
		t.Errorf("Assemble() = %d slides, want 0", n)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("empty deck not written: %v", err)
	}
}

func TestAssembleRecompressesToJPEG(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeArtifact(t, dir, "slide_1.png", color.RGBA{R: 200, G: 100, A: 255})}
	out := filepath.Join(dir, "deck.pptx")

	a := &Assembler{JPEGQuality: 85, MaxDimension: 1600}
	if _, err := a.Assemble(paths, out); err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer zr.Close()

	found := false
	for _, f := range zr.File {
		if f.Name == "ppt/media/image1.jpeg" {
			found = true
		}
		if f.Name == "ppt/media/image1.png" {
			t.Error("original PNG embedded despite recompression")
		}
	}
	if !found {
		t.Error("recompressed JPEG media part not found")
	}
}

func TestAssembleFallsBackOnBadImage(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "deck.pptx")

	// Recompression fails on undecodable bytes; the original is embedded
	// instead of dropping the slide.
	a := &Assembler{JPEGQuality: 85}
	n, err := a.Assemble([]string{bad}, out)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if n != 1 {
		t.Errorf("Assemble() = %d slides, want 1", n)
	}
}
