package compositor

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/go-minervga/ttesting"
)

func solid(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func rgbaAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestCompositeSheetLayout(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	imgs := []image.Image{
		solid(16, 24, red), solid(16, 24, red), solid(16, 24, red),
	}
	sheet := CompositeSheet(imgs, 2, 4, nil)

	// 2 cells per row, 2 rows, 16x24 cells, 4px padding.
	b := sheet.Bounds()
	ttesting.AssertEqualInt(t, "sheet width", b.Dx(), 2*(16+4)+4)
	ttesting.AssertEqualInt(t, "sheet height", b.Dy(), 2*(24+4)+4)

	// Padding corner is background, first cell origin is sprite.
	if got := rgbaAt(t, sheet, 0, 0); got != DefaultBackground {
		t.Errorf("corner = %v; want background %v", got, DefaultBackground)
	}
	if got := rgbaAt(t, sheet, 4, 4); got != red {
		t.Errorf("cell origin = %v; want %v", got, red)
	}

	// Cell 1 starts one cell stride to the right.
	if got := rgbaAt(t, sheet, 4+16+4, 4); got != red {
		t.Errorf("second cell = %v; want %v", got, red)
	}

	// Row 1 holds only one image; the slot next to it is background.
	if got := rgbaAt(t, sheet, 4, 4+24+4); got != red {
		t.Errorf("third cell = %v; want %v", got, red)
	}
	if got := rgbaAt(t, sheet, 4+16+4, 4+24+4); got != DefaultBackground {
		t.Errorf("empty slot = %v; want background", got)
	}
}

func TestCompositeSheetWidthSpansFullRow(t *testing.T) {
	sheet := CompositeSheet([]image.Image{solid(8, 8, color.RGBA{A: 255})}, 10, 2, nil)
	ttesting.AssertEqualInt(t, "width", sheet.Bounds().Dx(), 10*(8+2)+2)
	ttesting.AssertEqualInt(t, "height", sheet.Bounds().Dy(), 1*(8+2)+2)
}

func TestCompositeSheetDefaultsPerRow(t *testing.T) {
	imgs := make([]image.Image, DefaultPerRow+1)
	for i := range imgs {
		imgs[i] = solid(4, 4, color.RGBA{0, 255, 0, 255})
	}
	sheet := CompositeSheet(imgs, 0, 1, nil)
	// 11 images wrap to a second row at the default 10 per row.
	ttesting.AssertEqualInt(t, "rows", sheet.Bounds().Dy(), 2*(4+1)+1)
}

func TestCompositeSheetCustomBackground(t *testing.T) {
	blue := color.RGBA{0, 0, 170, 255}
	sheet := CompositeSheet(nil, 3, 2, blue)
	if got := rgbaAt(t, sheet, 0, 0); got != blue {
		t.Errorf("background = %v; want %v", got, blue)
	}
}

func TestCompositeSheetEmptyInput(t *testing.T) {
	sheet := CompositeSheet(nil, 5, 3, nil)
	// No cells: the sheet degenerates to padding only.
	ttesting.AssertEqualInt(t, "width", sheet.Bounds().Dx(), 5*3+3)
	ttesting.AssertEqualInt(t, "height", sheet.Bounds().Dy(), 3)
}

func TestCompositeSheetMixedSizes(t *testing.T) {
	big := solid(16, 16, color.RGBA{255, 255, 255, 255})
	small := solid(4, 4, color.RGBA{255, 255, 85, 255})
	sheet := CompositeSheet([]image.Image{big, small}, 2, 0, nil)

	// Cells stretch to the big image.
	ttesting.AssertEqualInt(t, "width", sheet.Bounds().Dx(), 32)

	// The small image lands at its cell's top left; the rest of that
	// cell stays background.
	if got := rgbaAt(t, sheet, 16, 0); (got != color.RGBA{255, 255, 85, 255}) {
		t.Errorf("small cell origin = %v", got)
	}
	if got := rgbaAt(t, sheet, 16+8, 8); got != DefaultBackground {
		t.Errorf("small cell remainder = %v; want background", got)
	}
}
