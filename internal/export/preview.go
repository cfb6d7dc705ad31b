package export

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"github.com/Faultbox/surfaceplot/internal/engine/surface"
)

// PreviewImage renders the per-vertex color grid as a top-down image,
// one pixel per grid vertex. Row v = 0 ends up at the bottom of the
// image so the preview matches the viewer's orientation.
func PreviewImage(b *surface.Buffers, uCount, vCount int) (*image.NRGBA, error) {
	if b == nil || len(b.Colors) != uCount*vCount*4 {
		return nil, fmt.Errorf("color buffer does not match a %dx%d grid", uCount, vCount)
	}

	img := image.NewNRGBA(image.Rect(0, 0, uCount, vCount))
	for v := 0; v < vCount; v++ {
		row := vCount - 1 - v
		for u := 0; u < uCount; u++ {
			src := (v*uCount + u) * 4
			dst := img.PixOffset(u, row)
			copy(img.Pix[dst:dst+4], b.Colors[src:src+4])
		}
	}
	return img, nil
}

// WritePreview encodes the color grid as a WebP image.
func WritePreview(w io.Writer, b *surface.Buffers, uCount, vCount int) error {
	img, err := PreviewImage(b, uCount, vCount)
	if err != nil {
		return err
	}
	return nativewebp.Encode(w, img, nil)
}

// SavePreview writes the WebP preview to the given path.
func SavePreview(path string, b *surface.Buffers, uCount, vCount int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePreview(f, b, uCount, vCount); err != nil {
		return fmt.Errorf("writing preview to %s: %w", path, err)
	}
	return nil
}
