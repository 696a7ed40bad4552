// Package vga maps rasterized sprite grids onto the fixed 16-color
// palette of VGA mode 12h and renders them as images.
package vga

import "image/color"

// Palette is the default 16-color palette of VGA mode 12h, the mode
// the original renderer ran in. Entries 0-7 are the low-intensity
// colors, 8-15 the high-intensity ones; color 6 is brown rather than
// dark yellow, as the EGA/VGA hardware defined it.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 255},       //  0: Black
	color.RGBA{0, 0, 170, 255},     //  1: Blue
	color.RGBA{0, 170, 0, 255},     //  2: Green
	color.RGBA{0, 170, 170, 255},   //  3: Cyan
	color.RGBA{170, 0, 0, 255},     //  4: Red
	color.RGBA{170, 0, 170, 255},   //  5: Magenta
	color.RGBA{170, 85, 0, 255},    //  6: Brown
	color.RGBA{170, 170, 170, 255}, //  7: Light Gray
	color.RGBA{85, 85, 85, 255},    //  8: Dark Gray
	color.RGBA{85, 85, 255, 255},   //  9: Light Blue
	color.RGBA{85, 255, 85, 255},   // 10: Light Green
	color.RGBA{85, 255, 255, 255},  // 11: Light Cyan
	color.RGBA{255, 85, 85, 255},   // 12: Light Red
	color.RGBA{255, 85, 255, 255},  // 13: Light Magenta
	color.RGBA{255, 255, 85, 255},  // 14: Yellow
	color.RGBA{255, 255, 255, 255}, // 15: White
}

// Color returns the palette entry for a color index. Only the low 4
// bits of the index are significant.
func Color(idx uint8) color.RGBA {
	return Palette[idx&0x0f].(color.RGBA)
}
