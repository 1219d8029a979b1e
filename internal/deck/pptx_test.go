package deck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

// readDeck serializes p and indexes the resulting package by part name.
func readDeck(t *testing.T, p *Presentation) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a valid zip archive: %v", err)
	}

	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open part %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(data)
	}
	return parts
}

func TestWriteEmptyDeck(t *testing.T) {
	parts := readDeck(t, NewPresentation())

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing required part %s", name)
		}
	}

	if strings.Contains(parts["ppt/presentation.xml"], "<p:sldIdLst>") {
		t.Error("empty deck should not carry a slide id list")
	}
}

func TestWriteImageSlides(t *testing.T) {
	p := NewPresentation()
	img1 := []byte("first-image-bytes")
	img2 := []byte("second-image-bytes")
	p.AddImageSlide(img1, "png")
	p.AddImageSlide(img2, "jpeg")

	if p.SlideCount() != 2 {
		t.Fatalf("SlideCount() = %d, want 2", p.SlideCount())
	}

	parts := readDeck(t, p)

	for _, name := range []string{
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing slide part %s", name)
		}
	}

	if got := parts["ppt/media/image1.png"]; got != string(img1) {
		t.Error("image1.png does not match first added image")
	}
	if got := parts["ppt/media/image2.jpeg"]; got != string(img2) {
		t.Error("image2.jpeg does not match second added image")
	}

	// Each slide references its own media part through rId2.
	if !strings.Contains(parts["ppt/slides/_rels/slide1.xml.rels"], `Target="../media/image1.png"`) {
		t.Error("slide1 rels do not target image1.png")
	}
	if !strings.Contains(parts["ppt/slides/_rels/slide2.xml.rels"], `Target="../media/image2.jpeg"`) {
		t.Error("slide2 rels do not target image2.jpeg")
	}
	if !strings.Contains(parts["ppt/slides/slide1.xml"], `r:embed="rId2"`) {
		t.Error("slide1 picture does not embed rId2")
	}
}

func TestPresentationSlideOrder(t *testing.T) {
	p := NewPresentation()
	for i := 0; i < 3; i++ {
		p.AddImageSlide([]byte{byte(i)}, "png")
	}

	parts := readDeck(t, p)
	pres := parts["ppt/presentation.xml"]

	// Slide ids appear in insertion order, starting at 256 / rId2.
	for i := 0; i < 3; i++ {
		want := fmt.Sprintf(`<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
		if !strings.Contains(pres, want) {
			t.Errorf("presentation.xml missing %s", want)
		}
	}

	prev := -1
	for i := 0; i < 3; i++ {
		pos := strings.Index(pres, fmt.Sprintf(`r:id="rId%d"`, 2+i))
		if pos <= prev {
			t.Fatalf("slide rId%d out of order", 2+i)
		}
		prev = pos
	}
}

func TestContentTypesCoverSlides(t *testing.T) {
	p := NewPresentation()
	p.AddImageSlide([]byte("x"), "png")
	p.AddImageSlide([]byte("y"), "png")

	parts := readDeck(t, p)
	ct := parts["[Content_Types].xml"]

	for _, want := range []string{
		`PartName="/ppt/slides/slide1.xml"`,
		`PartName="/ppt/slides/slide2.xml"`,
		`Extension="png"`,
		`Extension="jpeg"`,
		`PartName="/ppt/presentation.xml"`,
	} {
		if !strings.Contains(ct, want) {
			t.Errorf("[Content_Types].xml missing %s", want)
		}
	}
}

func TestSlideCanvasDimensions(t *testing.T) {
	p := NewPresentation()
	p.AddImageSlide([]byte("x"), "png")

	parts := readDeck(t, p)

	wantSize := fmt.Sprintf(`<p:sldSz cx="%d" cy="%d"/>`, SlideWidthEMU, SlideHeightEMU)
	if !strings.Contains(parts["ppt/presentation.xml"], wantSize) {
		t.Errorf("presentation.xml missing slide size %s", wantSize)
	}

	wantExt := fmt.Sprintf(`<a:ext cx="%d" cy="%d"/>`, SlideWidthEMU, SlideHeightEMU)
	if !strings.Contains(parts["ppt/slides/slide1.xml"], wantExt) {
		t.Errorf("slide picture not stretched to full canvas %s", wantExt)
	}
}
