// Package compositor lays sprite images out on a contact sheet, the
// grid-of-cells overview image the export tool writes next to the
// individual sprites.
package compositor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bradfitz/iter"
)

// Layout defaults. Ten sprites per row matches the sheet the original
// export produced.
const (
	DefaultPerRow  = 10
	DefaultPadding = 4
)

// DefaultBackground is the dark gray the sheets use behind and between
// cells, chosen so both black and white sprite pixels stay visible.
var DefaultBackground = color.RGBA{32, 32, 32, 255}

// CompositeSheet draws imgs left to right, top to bottom, perRow cells
// per row with pad pixels of background around every cell. Cells are
// sized to the largest image; smaller images keep their own size and
// align to the cell's top left. A perRow below 1 uses DefaultPerRow.
// The sheet width always spans perRow cells, even when fewer images
// were given.
func CompositeSheet(imgs []image.Image, perRow, pad int, bg color.Color) image.Image {
	if perRow < 1 {
		perRow = DefaultPerRow
	}
	if pad < 0 {
		pad = 0
	}
	if bg == nil {
		bg = DefaultBackground
	}

	var cellW, cellH int
	for _, img := range imgs {
		s := img.Bounds().Size()
		if s.X > cellW {
			cellW = s.X
		}
		if s.Y > cellH {
			cellH = s.Y
		}
	}
	rows := (len(imgs) + perRow - 1) / perRow

	fullSize := image.Rect(0, 0, perRow*(cellW+pad)+pad, rows*(cellH+pad)+pad)
	sheet := image.NewRGBA(fullSize)
	draw.Draw(sheet, fullSize, &image.Uniform{bg}, image.ZP, draw.Src)

	for i := range iter.N(len(imgs)) {
		cellX := (i % perRow) * (cellW + pad)
		cellY := (i / perRow) * (cellH + pad)
		b := imgs[i].Bounds()

		dst := image.Rect(
			cellX+pad, cellY+pad,
			cellX+pad+b.Dx(), cellY+pad+b.Dy())

		draw.Draw(sheet, dst, imgs[i], b.Min, draw.Over)
	}
	return sheet
}
