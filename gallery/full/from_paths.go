// Package full assembles a ready-to-serve gallery.Gallery from data
// file paths or flags.
package full

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/lbr"
	"badc0de.net/pkg/go-minervga/paths"
)

// FromPaths populates a gallery.Gallery with the sprite library found
// at the passed path. An empty path yields an empty gallery.
func FromPaths(lbrPath string) (*gallery.Gallery, error) {
	g, err := gallery.New()
	if err != nil {
		return nil, errors.Wrap(err, "creating sprite gallery")
	}

	if lbrPath != "" {
		glog.V(1).Infof("full.FromPaths(): opening sprite library: %q", lbrPath)
		f, err := paths.NoFindOpen(lbrPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening sprite library for add")
		}
		lib, err := lbr.DecodeAll(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrap(err, "parsing sprite library for add")
		}
		if err := g.AddLibrary(lib); err != nil {
			return nil, errors.Wrap(err, "adding sprite library")
		}
	}

	return g, nil
}
