package paths

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestFindMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if got := Find("NO_SUCH_FILE.LBR"); got != "" {
		t.Errorf(`Find("NO_SUCH_FILE.LBR") = %q; want ""`, got)
	}
}

func TestFindInDatafilesDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "datafiles"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "datafiles", "X.LBR"), []byte("\"X\",0\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	chdir(t, dir)

	want := filepath.Join("datafiles", "X.LBR")
	if got := Find("X.LBR"); got != want {
		t.Errorf("Find(%q) = %q; want %q", "X.LBR", got, want)
	}
}

func TestOpenReadsFoundFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Y.LBR"), []byte("\"Y\",0\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	chdir(t, dir)

	f, err := Open("Y.LBR")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(b) != "\"Y\",0\n" {
		t.Errorf("read %q", b)
	}
}

func TestNoFindOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Z.LBR")
	if err := os.WriteFile(path, []byte("\"Z\",0\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := NoFindOpen(path)
	if err != nil {
		t.Fatalf("NoFindOpen: %v", err)
	}
	f.Close()

	if _, err := NoFindOpen(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("NoFindOpen on a missing file: no error")
	}
}
