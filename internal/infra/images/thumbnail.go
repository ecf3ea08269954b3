package images

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const defaultThumbnailWidth = 300

// Thumbnailer produces width-constrained JPEG thumbnails while keeping the
// source aspect ratio.
type Thumbnailer struct {
	Width int
}

func NewThumbnailer(width int) *Thumbnailer {
	if width <= 0 {
		width = defaultThumbnailWidth
	}
	return &Thumbnailer{Width: width}
}

// Thumbnail decodes the source image, resizes it to the configured width
// and re-encodes it as JPEG. Images already narrower than the target width
// are re-encoded without resizing.
func (t *Thumbnailer) Thumbnail(src []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("thumbnail: decode: %w", err)
	}

	if img.Bounds().Dx() > t.Width {
		img = imaging.Resize(img, t.Width, 0, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("thumbnail: encode: %w", err)
	}
	return out.Bytes(), nil
}
