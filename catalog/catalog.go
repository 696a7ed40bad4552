// Package catalog writes the plain-text index listing that ships next
// to exported sprite images.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"badc0de.net/pkg/go-minervga/lbr"
)

// Write emits the index listing for lib to w. The layout follows the
// sprite_index.txt files the original export tool wrote: a title
// block, library facts, then one line per sprite in file order.
func Write(w io.Writer, lib *lbr.Library) error {
	var b bytes.Buffer

	title := fmt.Sprintf("%s Sprite Library", lib.Name)
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "Library Name: %s\n", lib.Name)
	fmt.Fprintf(&b, "Total Sprites: %d\n", len(lib.Sprites))
	fmt.Fprintf(&b, "Sprite Size: %s\n", spriteSize(lib))
	fmt.Fprintf(&b, "Format: VGA Mode 12 (4-plane, 16 colors)\n\n")
	fmt.Fprintf(&b, "Sprite Index:\n-------------\n")
	for _, s := range lib.Sprites {
		fmt.Fprintf(&b, "%2d: %s\n", s.Index, s.Name)
	}

	_, err := w.Write(b.Bytes())
	return err
}

// spriteSize describes the library's sprite dimensions. Libraries in
// the wild are uniform 16x24, but nothing enforces that, so mixed
// sizes are called out rather than misreported.
func spriteSize(lib *lbr.Library) string {
	if len(lib.Sprites) == 0 {
		return "n/a"
	}
	w, h := lib.Sprites[0].Width, lib.Sprites[0].Height
	for _, s := range lib.Sprites[1:] {
		if s.Width != w || s.Height != h {
			return "mixed"
		}
	}
	return fmt.Sprintf("%dx%d pixels", w, h)
}
