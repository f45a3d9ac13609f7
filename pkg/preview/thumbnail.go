package preview

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// ThumbnailWidth is the largest width a thumbnail keeps; wider images get
// downscaled to it with Lanczos resampling.
const ThumbnailWidth = 400

const thumbnailQuality = 85

// Thumbnail re-encodes a rendered image (PNG or JPEG) as a JPEG no wider
// than [ThumbnailWidth], preserving aspect ratio. Narrower images pass
// through at their own size.
func Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > ThumbnailWidth {
		img = imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
