//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

func isTermItermWez() bool {
	return rasterm.IsTermItermWez()
}

// PrintRasTerm draws an image using the RasTerm library, picking
// whichever of kitty, iTerm or sixel the terminal supports. Terminals
// supporting none of them get nothing.
func PrintRasTerm(i image.Image) {
	switch {
	case rasterm.IsTermKitty():
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
	case rasterm.IsTermItermWez():
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
	default:
		capable, err := rasterm.IsSixelCapable()
		if !capable || err != nil {
			return
		}
		// Sprites only ever use the 16 VGA colors, so a 16-color
		// quantization loses nothing.
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 16}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.ZP)

		rasterm.Settings{}.SixelWriteImage(os.Stdout, palettedImage)
	}
	fmt.Printf("\n")
}
