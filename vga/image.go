package vga

import (
	"image"

	"badc0de.net/pkg/go-minervga/lbr"
)

// Image renders a pixel grid as an RGBA image, each grid pixel
// becoming a scale x scale block. A scale below 1 renders 1:1.
func Image(g *lbr.PixelGrid, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			col := Color(g.ColorIndexAt(x, y))
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					img.SetRGBA(x*scale+sx, y*scale+sy, col)
				}
			}
		}
	}
	return img
}

// PalettedImage renders a pixel grid 1:1 as a paletted image sharing
// Palette, which GIF encoders can take without quantizing.
func PalettedImage(g *lbr.PixelGrid) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Width, g.Height), Palette)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetColorIndex(x, y, g.ColorIndexAt(x, y)&0x0f)
		}
	}
	return img
}
