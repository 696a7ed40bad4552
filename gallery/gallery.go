// Package gallery ties a parsed sprite library to its rendered forms.
// It hands out sprite records, rasterized grids and scaled images, and
// caches what it renders. Sprites are identified by their position in
// the library, counting from 0; the index column inside the file is
// display metadata and takes no part in lookups.
package gallery

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"image"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-minervga/lbr"
	"badc0de.net/pkg/go-minervga/vga"
)

type imageKey struct {
	pos   int
	scale int
}

// Gallery wraps one sprite library. Safe for concurrent use once the
// library is added.
type Gallery struct {
	lib *lbr.Library
	sig uint32

	mu     sync.Mutex
	images map[imageKey]image.Image
	raster map[int][]lbr.Diag // rasterization diags, keyed by position
}

// New returns an empty gallery. Add a library with AddLibrary.
func New() (*Gallery, error) {
	return &Gallery{
		images: map[imageKey]image.Image{},
		raster: map[int][]lbr.Diag{},
	}, nil
}

// AddLibrary puts lib into the gallery, replacing any previous library
// and dropping cached renders.
func (g *Gallery) AddLibrary(lib *lbr.Library) error {
	if lib == nil {
		return fmt.Errorf("gallery: nil library")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lib = lib
	g.sig = signature(lib)
	g.images = map[imageKey]image.Image{}
	g.raster = map[int][]lbr.Diag{}
	return nil
}

// LibraryName returns the loaded library's name, or "" when none is
// loaded.
func (g *Gallery) LibraryName() string {
	if g.lib == nil {
		return ""
	}
	return g.lib.Name
}

// SpriteCount returns how many sprites the library parsed into, not
// what its header declared.
func (g *Gallery) SpriteCount() int {
	if g.lib == nil {
		return 0
	}
	return len(g.lib.Sprites)
}

// Library exposes the underlying parsed library. Callers must not
// modify it.
func (g *Gallery) Library() *lbr.Library {
	return g.lib
}

// Signature is a checksum over the library's content, stable across
// runs. Serving layers put it into cache validators.
func (g *Gallery) Signature() uint32 {
	return g.sig
}

// Sprite returns the record at the given position.
func (g *Gallery) Sprite(pos int) (*lbr.SpriteRecord, error) {
	if g.lib == nil || pos < 0 || pos >= len(g.lib.Sprites) {
		return nil, fmt.Errorf("gallery: no sprite at position %d", pos)
	}
	return &g.lib.Sprites[pos], nil
}

// Grid rasterizes the sprite at the given position. Rasterization
// diags are recorded on first render and reported through Diags.
func (g *Gallery) Grid(pos int) (*lbr.PixelGrid, error) {
	rec, err := g.Sprite(pos)
	if err != nil {
		return nil, err
	}
	grid, diags := lbr.Rasterize(rec)
	g.mu.Lock()
	if _, seen := g.raster[pos]; !seen {
		g.raster[pos] = diags
	}
	g.mu.Unlock()
	return grid, nil
}

// SpriteImage renders the sprite at the given position at the given
// integer scale, caching the result.
func (g *Gallery) SpriteImage(pos, scale int) (image.Image, error) {
	if scale < 1 {
		scale = 1
	}
	key := imageKey{pos, scale}

	g.mu.Lock()
	if img, ok := g.images[key]; ok {
		g.mu.Unlock()
		return img, nil
	}
	g.mu.Unlock()

	grid, err := g.Grid(pos)
	if err != nil {
		return nil, err
	}
	img := vga.Image(grid, scale)

	g.mu.Lock()
	g.images[key] = img
	g.mu.Unlock()
	return img, nil
}

// PalettedSpriteImage renders the sprite at the given position 1:1 on
// the fixed 16-color palette, for encoders that want indexed input.
func (g *Gallery) PalettedSpriteImage(pos int) (*image.Paletted, error) {
	grid, err := g.Grid(pos)
	if err != nil {
		return nil, err
	}
	return vga.PalettedImage(grid), nil
}

// RenderAll renders every sprite at the given scale, in parallel, and
// returns the images in library order.
func (g *Gallery) RenderAll(scale int) ([]image.Image, error) {
	out := make([]image.Image, g.SpriteCount())

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for pos := range out {
		pos := pos // per-iteration copy; required while go.mod declares go < 1.22
		eg.Go(func() error {
			img, err := g.SpriteImage(pos, scale)
			if err != nil {
				return err
			}
			out[pos] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Diags returns parse diags followed by rasterization diags observed
// so far, in sprite order.
func (g *Gallery) Diags() []lbr.Diag {
	if g.lib == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	diags := append([]lbr.Diag(nil), g.lib.Diags...)
	for pos := range g.lib.Sprites {
		diags = append(diags, g.raster[pos]...)
	}
	return diags
}

// signature hashes the library's content: name, record metadata and
// every data word.
func signature(lib *lbr.Library) uint32 {
	h := fnv.New32a()
	io.WriteString(h, lib.Name)
	for i := range lib.Sprites {
		s := &lib.Sprites[i]
		fmt.Fprintf(h, "|%d:%s:%dx%d:", s.Index, s.Name, s.Width, s.Height)
		var w [2]byte
		for _, v := range s.Data {
			binary.LittleEndian.PutUint16(w[:], uint16(v))
			h.Write(w[:])
		}
	}
	return h.Sum32()
}
