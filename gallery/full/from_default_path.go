package full

import (
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-minervga/datafiles"
	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/lbr"
	"badc0de.net/pkg/go-minervga/paths"
)

// FromDefaultPaths builds a gallery from MINERVGA.LBR found at default
// filepaths as located by the paths package. When the file is nowhere
// to be found and allowSample is true, the embedded sample library is
// loaded instead, so demos and tests work on a bare checkout.
//
// Appropriate for tests or web frontends. Inappropriate for tools
// where the path should be specifiable by the user on the command
// line.
func FromDefaultPaths(allowSample bool) (*gallery.Gallery, error) {
	if path := paths.Find("MINERVGA.LBR"); path != "" {
		return FromPaths(path)
	}
	if !allowSample {
		return nil, errors.New("MINERVGA.LBR not found in default paths")
	}

	g, err := gallery.New()
	if err != nil {
		return nil, errors.Wrap(err, "creating sprite gallery")
	}
	lib, err := lbr.ParseLibrary(datafiles.SampleLBR)
	if err != nil {
		return nil, errors.Wrap(err, "parsing embedded sample library")
	}
	if err := g.AddLibrary(lib); err != nil {
		return nil, errors.Wrap(err, "adding embedded sample library")
	}
	return g, nil
}
