package segment

import (
	"image"

	"github.com/f3rmion/liveocr/internal/geom"
)

// contourMargin compensates for anti-aliased stroke edges lost to the hard
// threshold.
const contourMargin = 0.5

// contourRects returns the bounding rect of the outer border of every
// 8-connected foreground component in bin, each expanded by contourMargin.
// A component's outer border touches its extreme pixels, so the border's
// bounding rect and the component's coincide.
func contourRects(bin *image.Gray) []geom.Rect {
	w, h := bin.Bounds().Dx(), bin.Bounds().Dy()
	visited := make([]bool, w*h)
	var rects []geom.Rect

	var stack []image.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if bin.Pix[y*w+x] == 0 || visited[y*w+x] {
				continue
			}

			minX, minY, maxX, maxY := x, y, x, y
			visited[y*w+x] = true
			stack = append(stack[:0], image.Pt(x, y))
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if p.X < minX {
					minX = p.X
				}
				if p.X > maxX {
					maxX = p.X
				}
				if p.Y < minY {
					minY = p.Y
				}
				if p.Y > maxY {
					maxY = p.Y
				}
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := p.X+dx, p.Y+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						i := ny*w + nx
						if bin.Pix[i] != 0 && !visited[i] {
							visited[i] = true
							stack = append(stack, image.Pt(nx, ny))
						}
					}
				}
			}

			rects = append(rects, geom.NewRect(
				float64(minX), float64(minY),
				float64(maxX), float64(maxY),
			).Expand(contourMargin))
		}
	}
	return rects
}
