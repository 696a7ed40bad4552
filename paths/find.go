// Package paths locates MinerVGA data files (sprite libraries) across
// the places a development checkout or a deployed binary keeps them.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// getPossiblePathDirs returns the directories Find searches, in order:
// the module's datafiles directory under GOPATH, the binary's runfiles
// tree, a local datafiles directory, and the working directory.
func getPossiblePathDirs() []string {
	dirs := []string{}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src", "badc0de.net", "pkg", "go-minervga", "datafiles"))
	}
	if len(os.Args) > 0 {
		dirs = append(dirs, filepath.Join(os.Args[0]+".runfiles", "go_minervga", "datafiles"))
	}
	dirs = append(dirs, "datafiles", ".")
	return dirs
}

func getPossiblePaths(fileName string) []string {
	var paths []string
	for _, dir := range getPossiblePathDirs() {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	return paths
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at.
//
// For example, for "MINERVGA.LBR" it may return
// "mybinary.runfiles/go_minervga/datafiles/MINERVGA.LBR".
//
// Returns an empty string if no candidate location has the file.
func Find(fileName string) string {
	for _, path := range getPossiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}

	return ""
}

// Open locates the passed file in the same locations that Find would look, and
// opens it. If no location has the file, the last open error is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	var err error
	for _, path := range getPossiblePaths(fileName) {
		var f *os.File
		if f, err = os.Open(path); err == nil {
			return f, nil
		}
	}
	return nil, err
}

// NoFindOpen opens the passed path as-is, without the Find lookup. Use
// it for paths the user supplied explicitly, e.g. through a flag.
func NoFindOpen(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	return os.Open(fileName)
}
