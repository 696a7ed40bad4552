package lbr

import (
	"fmt"

	"github.com/golang/glog"
)

// PixelGrid is a rasterized sprite: Height rows of Width 4-bit color
// indices, row-major in Pix. Index 0 is black, not transparent; the
// format has no alpha.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []uint8
}

// ColorIndexAt returns the palette index of the pixel at (x, y).
func (g *PixelGrid) ColorIndexAt(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Rasterize combines a record's plane words into a grid of color
// indices. Each pixel row consumes exactly 4 consecutive words, one
// per plane, plane 0 being the least significant bit of the color.
// Rows with no data left are painted black and reported as Diags, so
// the grid always comes back with the record's full declared height.
// Columns at x >= 16 stay color 0: only one word per plane per row is
// modeled, matching every library the original game shipped.
//
// Rasterize never modifies rec and is safe to call concurrently.
func Rasterize(rec *SpriteRecord) (*PixelGrid, []Diag) {
	w, h := rec.Width, rec.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &PixelGrid{Width: w, Height: h, Pix: make([]uint8, w*h)}
	var diags []Diag

	span := w
	if span > 16 {
		span = 16
	}
	pos := 0
	for row := 0; row < h; row++ {
		var words [planeCount]int16
		if pos+planeCount <= len(rec.Data) {
			copy(words[:], rec.Data[pos:pos+planeCount])
		} else {
			d := Diag{Sprite: rec.Index, Msg: fmt.Sprintf("not enough data at row %d, padding with background", row)}
			glog.Warningf("lbr: sprite %d (%s): %s", rec.Index, rec.Name, d.Msg)
			diags = append(diags, d)
		}
		pos += planeCount

		var planes [planeCount][16]uint8
		for p := 0; p < planeCount; p++ {
			planes[p] = planeBits(words[p])
		}
		for x := 0; x < span; x++ {
			g.Pix[row*w+x] = planes[0][x] |
				planes[1][x]<<1 |
				planes[2][x]<<2 |
				planes[3][x]<<3
		}
	}
	return g, diags
}
