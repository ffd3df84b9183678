package segment

import (
	"image"
	"image/color"
)

const binaryThreshold = 128

// grayscale converts an image region to 8-bit gray using the standard
// luminance weights.
func grayscale(img image.Image, r image.Rectangle) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			cr, cg, cb, _ := img.At(r.Min.X+x, r.Min.Y+y).RGBA()
			lum := 0.299*float64(cr>>8) + 0.587*float64(cg>>8) + 0.114*float64(cb>>8)
			out.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}
	return out
}

// binarize thresholds the crop at a fixed global value. The top-left pixel is
// assumed to be background; when it thresholds to foreground the polarity is
// inverted, so glyph strokes come out as 255 for both dark-on-light and
// light-on-dark lines.
func binarize(img image.Image, r image.Rectangle) *image.Gray {
	gray := grayscale(img, r)
	bin := image.NewGray(gray.Bounds())
	for i, v := range gray.Pix {
		if v > binaryThreshold {
			bin.Pix[i] = 255
		}
	}
	if len(bin.Pix) > 0 && bin.Pix[0] == 255 {
		for i, v := range bin.Pix {
			if v == 255 {
				bin.Pix[i] = 0
			} else {
				bin.Pix[i] = 255
			}
		}
	}
	return bin
}
