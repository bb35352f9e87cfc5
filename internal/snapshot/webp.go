package snapshot

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// WriteWebP encodes img to path as lossless WebP.
func WriteWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return nil
}
