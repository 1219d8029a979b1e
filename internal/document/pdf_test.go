package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPDF writes a minimal multi-page PDF fixture. Each entry in pages
// becomes one page; an empty string becomes a page with an empty content
// stream. Object offsets for the xref table are computed while writing.
func writeTestPDF(t *testing.T, path string, pages []string) {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	addObj("<< /Type /Catalog /Pages 2 0 R >>")
	addObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	addObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pages {
		content := ""
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		addObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		addObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefStart)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write PDF fixture: %v", err)
	}
}

func TestExtractPDFAllPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	writeTestPDF(t, path, []string{"first page", "second page", "third page"})

	segments := ExtractPDF(path, DefaultMaxPages)

	if len(segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segments))
	}
	wantText := []string{"first page", "second page", "third page"}
	for i, seg := range segments {
		if seg.Ordinal != i+1 {
			t.Errorf("segments[%d].Ordinal = %d, want %d", i, seg.Ordinal, i+1)
		}
		if seg.Source != SourcePaginated {
			t.Errorf("segments[%d].Source = %q, want %q", i, seg.Source, SourcePaginated)
		}
		if !strings.Contains(seg.Body, wantText[i]) {
			t.Errorf("segments[%d].Body = %q, want it to contain %q", i, seg.Body, wantText[i])
		}
	}
}

func TestExtractPDFPageCap(t *testing.T) {
	// More pages than maxPages: exactly maxPages segments, numbered from 1
	// in page order, the rest never extracted.
	pages := make([]string, 20)
	for i := range pages {
		pages[i] = fmt.Sprintf("page %d", i+1)
	}
	path := filepath.Join(t.TempDir(), "long.pdf")
	writeTestPDF(t, path, pages)

	segments := ExtractPDF(path, 12)

	if len(segments) != 12 {
		t.Fatalf("len(segments) = %d, want 12", len(segments))
	}
	for i, seg := range segments {
		if seg.Ordinal != i+1 {
			t.Errorf("segments[%d].Ordinal = %d, want %d", i, seg.Ordinal, i+1)
		}
	}
	if !strings.Contains(segments[11].Body, "page 12") {
		t.Errorf("segments[11].Body = %q, want page 12 text", segments[11].Body)
	}
}

func TestExtractPDFEmptyPageSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.pdf")
	writeTestPDF(t, path, []string{"has text", "", "more text"})

	segments := ExtractPDF(path, DefaultMaxPages)

	if len(segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segments))
	}
	if segments[1].Body != NoTextSentinel {
		t.Errorf("empty page body = %q, want %q", segments[1].Body, NoTextSentinel)
	}
	if segments[0].Body == NoTextSentinel || segments[2].Body == NoTextSentinel {
		t.Error("pages with text got the sentinel body")
	}
}

func TestExtractPDFUnopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if segments := ExtractPDF(path, DefaultMaxPages); len(segments) != 0 {
		t.Errorf("len(segments) = %d, want 0 for an unopenable document", len(segments))
	}
}
