// lbrprint prints sprites from a MinerVGA sprite library on the
// terminal.
//
// With no renderer flags it paints 24bit colored blanks, two
// characters per pixel. -col256, -iterm and -rasterm switch renderers;
// -all walks the whole library.
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/gallery/full"
	"badc0de.net/pkg/go-minervga/imageprint"

	"github.com/golang/glog"
)

var (
	spriteID   = flag.Int("sprite", -1, "sprite to print, by position in the library")
	allSprites = flag.Bool("all", false, "print every sprite in the library")
	scale      = flag.Int("scale", 1, "integer upscale before printing")
	col        = flag.Bool("col", true, "whether to print in color at all")
	col256     = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm      = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm    = flag.Bool("rasterm", false, "whether to print with rasterm (kitty, iterm, sixel)")
	blanks     = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize   = flag.Bool("downsize", false, "downsize to terminal size before printing")
)

func printOne(g *gallery.Gallery, pos int) {
	rec, err := g.Sprite(pos)
	if err != nil {
		glog.Errorf("no sprite at position %d: %v", pos, err)
		return
	}
	fmt.Printf("%2d: %s (%dx%d)\n", rec.Index, rec.Name, rec.Width, rec.Height)

	if *col && !*col256 && !*iterm && !*rasterm && !*downsize && *scale <= 1 {
		// The default renderer needs no image; drive the escapes
		// straight off the color indices.
		grid, err := g.Grid(pos)
		if err != nil {
			glog.Errorf("rasterizing sprite %d: %v", pos, err)
			return
		}
		imageprint.PrintGrid(grid, *blanks)
		return
	}

	img, err := g.SpriteImage(pos, *scale)
	if err != nil {
		glog.Errorf("rendering sprite %d: %v", pos, err)
		return
	}
	out(img)
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	g, err := full.FromFilePathFlags()
	if err != nil {
		glog.Exitf("loading sprite library: %v", err)
	}
	if g.SpriteCount() == 0 {
		glog.Exitf("no sprite library found; pass --%s", full.FlagMinervgaLBRPath)
	}

	switch {
	case *allSprites:
		for pos := 0; pos < g.SpriteCount(); pos++ {
			printOne(g, pos)
		}
	case *spriteID >= 0:
		printOne(g, *spriteID)
	default:
		fmt.Fprintf(os.Stderr, "library %q has %d sprites; pass -sprite N or -all\n", g.LibraryName(), g.SpriteCount())
		flag.Usage()
	}
}
