package main

import (
	"image"

	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-minervga/imageprint"
)

func out(img image.Image) {
	if *downsize {
		if termSize, err := GetTermSize(); err == nil {
			if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && (*rasterm || *iterm) {
				// Renderers that emit a real image get pixel bounds.
				// Which renderer runs is only decided below, so this
				// guess sticks until imageprint grows size negotiation.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				// Cell renderers spend two columns and one row per pixel.
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
			}
		}
	}

	switch {
	case *rasterm:
		imageprint.PrintRasTerm(img)
	case !*col:
		imageprint.PrintNoColor(img, *blanks)
	case *iterm:
		imageprint.PrintITerm(img, "sprite.png")
	case *col256:
		imageprint.Print256Color(img, *blanks)
	default:
		imageprint.Print24bit(img, *blanks)
	}
}
