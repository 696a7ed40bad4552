package full

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-minervga/datafiles"
	"badc0de.net/pkg/go-minervga/ttesting"
)

func TestFromPathsEmptyPath(t *testing.T) {
	g, err := FromPaths("")
	if err != nil {
		t.Fatalf("FromPaths: %v", err)
	}
	ttesting.AssertEqualInt(t, "count", g.SpriteCount(), 0)
}

func TestFromPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.lbr")
	if err := os.WriteFile(path, []byte(datafiles.SampleLBR), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	g, err := FromPaths(path)
	if err != nil {
		t.Fatalf("FromPaths: %v", err)
	}
	ttesting.AssertEqualString(t, "name", g.LibraryName(), "SAMPLE")
	ttesting.AssertEqualInt(t, "count", g.SpriteCount(), 5)
}

func TestFromPathsMissingFile(t *testing.T) {
	if _, err := FromPaths(filepath.Join(t.TempDir(), "missing.lbr")); err == nil {
		t.Errorf("FromPaths on a missing file: no error")
	}
}

func TestFromPathsBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.lbr")
	if err := os.WriteFile(path, []byte("not a library"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := FromPaths(path); err == nil {
		t.Errorf("FromPaths on a broken file: no error")
	}
}

func TestFromDefaultPathsSampleFallback(t *testing.T) {
	// The test runs somewhere without a real MINERVGA.LBR on the
	// lookup path, so the embedded sample is what loads.
	g, err := FromDefaultPaths(true)
	if err != nil {
		t.Fatalf("FromDefaultPaths: %v", err)
	}
	if g.SpriteCount() == 0 {
		t.Errorf("gallery is empty")
	}
}
