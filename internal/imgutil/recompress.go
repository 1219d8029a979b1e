package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

// DefaultJPEGQuality is the encode quality used when a caller enables
// recompression without picking one.
const DefaultJPEGQuality = 85

// RecompressJPEG re-encodes a PNG or JPEG image as JPEG, optionally
// downscaling so the longest edge is at most maxDimension (0 keeps the
// original size). Generated 2K PNGs are large; re-encoding before embedding
// keeps deck files manageable.
func RecompressJPEG(data []byte, maxDimension, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if maxDimension > 0 && (width > maxDimension || height > maxDimension) {
		newWidth, newHeight := width, height
		if width >= height {
			newWidth = maxDimension
			newHeight = height * maxDimension / width
		} else {
			newHeight = maxDimension
			newWidth = width * maxDimension / height
		}

		scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled

		log.Debug().
			Int("width", width).
			Int("height", height).
			Int("new_width", newWidth).
			Int("new_height", newHeight).
			Msg("Downscaled image before re-encode")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	log.Debug().
		Str("source_format", format).
		Int("input_bytes", len(data)).
		Int("output_bytes", buf.Len()).
		Int("quality", quality).
		Msg("Recompressed image to JPEG")

	return buf.Bytes(), nil
}
