package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Average returns the pixel-wise average of images, which must all have the
// same bounds. Channels are averaged independently and rounded to the nearest
// value.
func Average(imgs []*image.RGBA) (*image.RGBA, error) {
	if len(imgs) == 0 {
		return nil, ErrNoImages
	}
	bounds := imgs[0].Bounds()
	for _, img := range imgs[1:] {
		if img.Bounds() != bounds {
			return nil, fmt.Errorf("%w: %v and %v", ErrShapeMismatch, bounds, img.Bounds())
		}
	}

	out := image.NewRGBA(bounds)
	n := uint32(len(imgs))
	sum := make([]uint32, len(out.Pix))
	for _, img := range imgs {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			src := img.Pix[img.PixOffset(bounds.Min.X, y):][:4*bounds.Dx()]
			dst := sum[out.PixOffset(bounds.Min.X, y):][:4*bounds.Dx()]
			for i, v := range src {
				dst[i] += uint32(v)
			}
		}
	}
	for i, v := range sum {
		out.Pix[i] = uint8((v + n/2) / n)
	}
	return out, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
