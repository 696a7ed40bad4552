package full

import (
	"badc0de.net/pkg/go-minervga/gallery"
	"badc0de.net/pkg/go-minervga/paths"
)

var (
	minervgaLBRPath string
)

type PathFlag string

const (
	FlagMinervgaLBRPath = PathFlag("minervga_lbr_path")
)

// SetupFilePathFlags registers flags to manually define paths to the
// data files a gallery is built from. Currently that registers
// --minervga_lbr_path, defaulting to wherever paths.Find locates
// MINERVGA.LBR.
//
// These paths will then be referred to in the FromFilePathFlags
// function.
func SetupFilePathFlags() {
	paths.SetupFilePathFlag("MINERVGA.LBR", string(FlagMinervgaLBRPath), &minervgaLBRPath)
}

// FromFilePathFlags initializes a gallery.Gallery populated with the
// files specified by the default flags such as --minervga_lbr_path.
// The flags need to be registered and parsed by the time this function
// is invoked.
func FromFilePathFlags() (*gallery.Gallery, error) {
	return FromPaths(minervgaLBRPath)
}

// PathFlagValue returns the value for the passed flag path (such as
// the path to MINERVGA.LBR).
func PathFlagValue(key PathFlag) string {
	switch key {
	case FlagMinervgaLBRPath:
		return minervgaLBRPath
	default:
		return ""
	}
}
