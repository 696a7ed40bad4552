package catalog

import (
	"strings"
	"testing"

	"badc0de.net/pkg/go-minervga/lbr"
	"badc0de.net/pkg/go-minervga/ttesting"
)

func testLibrary() *lbr.Library {
	return &lbr.Library{
		Name:     "MINE",
		Declared: 2,
		Sprites: []lbr.SpriteRecord{
			{Index: 1, Name: "MINER", Width: 16, Height: 24},
			{Index: 2, Name: "GOLD NUGGET", Width: 16, Height: 24},
		},
	}
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, testLibrary()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := b.String()

	want := `MINE Sprite Library
===================

Library Name: MINE
Total Sprites: 2
Sprite Size: 16x24 pixels
Format: VGA Mode 12 (4-plane, 16 colors)

Sprite Index:
-------------
 1: MINER
 2: GOLD NUGGET
`
	ttesting.AssertEqualString(t, "listing", got, want)
}

func TestWriteMixedSizes(t *testing.T) {
	lib := testLibrary()
	lib.Sprites[1].Height = 16
	var b strings.Builder
	if err := Write(&b, lib); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "Sprite Size: mixed\n") {
		t.Errorf("mixed sizes not reported:\n%s", b.String())
	}
}

func TestWriteEmptyLibrary(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, &lbr.Library{Name: "EMPTY"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "Total Sprites: 0\n") {
		t.Errorf("empty library miscounted:\n%s", b.String())
	}
	if !strings.Contains(b.String(), "Sprite Size: n/a\n") {
		t.Errorf("empty library size not n/a:\n%s", b.String())
	}
}
