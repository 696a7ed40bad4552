package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"badc0de.net/pkg/go-minervga/catalog"
	"badc0de.net/pkg/go-minervga/compositor"
	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/gallery/full"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/urfave/cli/v2"
)

type exporter struct {
	g      *gallery.Gallery
	out    string
	logger *log.Logger
}

func newExporter(c *cli.Context) (*exporter, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	g, err := full.FromPaths(c.Args().First())
	if err != nil {
		return nil, err
	}

	return &exporter{g: g, out: c.String("out"), logger: logger}, nil
}

// safeName makes a sprite name usable as a file name component. Library
// names like ROCK/WALL would otherwise escape the output directory.
func safeName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(name)
}

func (e *exporter) sprites(scale int, alsoOrig bool) error {
	if err := os.MkdirAll(e.out, 0755); err != nil {
		return err
	}
	origDir := filepath.Join(e.out, "1x")
	if alsoOrig && scale != 1 {
		if err := os.MkdirAll(origDir, 0755); err != nil {
			return err
		}
	}

	for pos := 0; pos < e.g.SpriteCount(); pos++ {
		rec, err := e.g.Sprite(pos)
		if err != nil {
			return err
		}
		base := fmt.Sprintf("%02d_%s.png", pos, safeName(rec.Name))

		if err := e.writeSpritePNG(filepath.Join(e.out, base), pos, scale); err != nil {
			return err
		}
		if alsoOrig && scale != 1 {
			if err := e.writeSpritePNG(filepath.Join(origDir, base), pos, 1); err != nil {
				return err
			}
		}
	}

	e.logger.Printf("wrote %d sprites to %s", e.g.SpriteCount(), e.out)
	return nil
}

func (e *exporter) writeSpritePNG(path string, pos, scale int) error {
	img, err := e.g.SpriteImage(pos, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	e.logger.Printf("wrote %s", path)
	return f.Close()
}

func (e *exporter) sheet(scale, perRow, pad int, alsoGIF bool) error {
	if err := os.MkdirAll(e.out, 0755); err != nil {
		return err
	}

	imgs, err := e.g.RenderAll(scale)
	if err != nil {
		return err
	}
	sheet := compositor.CompositeSheet(imgs, perRow, pad, nil)

	path := filepath.Join(e.out, "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, sheet); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.logger.Printf("wrote %s", path)

	if !alsoGIF {
		return nil
	}

	b := sheet.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 256), sheet))
	draw.Draw(pm, b, sheet, b.Min, draw.Src)

	path = filepath.Join(e.out, "sheet.gif")
	f, err = os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.Encode(f, pm, nil); err != nil {
		f.Close()
		return err
	}
	e.logger.Printf("wrote %s", path)
	return f.Close()
}

func (e *exporter) catalogFile() error {
	if err := os.MkdirAll(e.out, 0755); err != nil {
		return err
	}

	path := filepath.Join(e.out, "sprite_index.txt")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := catalog.Write(f, e.g.Library()); err != nil {
		f.Close()
		return err
	}
	e.logger.Printf("wrote %s", path)
	return f.Close()
}
