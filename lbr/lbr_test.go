package lbr

import (
	"strings"
	"testing"

	"badc0de.net/pkg/go-minervga/ttesting"
)

const testDoc = `"TESTLIB",4
1,"PICK",16,2,-1,0,0,0,0,-1,0,-1
2,"BENT PICK",x,2,1,2,3,4
3,"LAMP, OIL",16,1,1,0,0,0,128,256
4,"COAL",8,1,-4081,0,0,0
5,"WIDE",32,1,1,2,3,4,5,6,7,8,9,10
`

func parseTestDoc(t *testing.T) *Library {
	t.Helper()
	lib, err := ParseLibrary(testDoc)
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	return lib
}

func TestParseLibraryHeader(t *testing.T) {
	lib := parseTestDoc(t)
	ttesting.AssertEqualString(t, "library name", lib.Name, "TESTLIB")
	ttesting.AssertEqualInt(t, "declared count", lib.Declared, 4)
}

func TestParseLibraryRecords(t *testing.T) {
	lib := parseTestDoc(t)

	// Record 2 fails to parse, so 4 of the 5 lines survive.
	ttesting.AssertEqualInt(t, "parsed sprites", len(lib.Sprites), 4)
	ttesting.AssertEqualInt(t, "diags", len(lib.Diags), 1)

	pick := lib.Sprites[0]
	ttesting.AssertEqualInt(t, "pick index", pick.Index, 1)
	ttesting.AssertEqualString(t, "pick name", pick.Name, "PICK")
	ttesting.AssertEqualInt(t, "pick width", pick.Width, 16)
	ttesting.AssertEqualInt(t, "pick height", pick.Height, 2)
	ttesting.AssertEqualInt(t, "pick words", len(pick.Data), 8)

	// Quoted comma stays inside the name.
	ttesting.AssertEqualString(t, "lamp name", lib.Sprites[1].Name, "LAMP, OIL")
}

func TestParseLibrarySkipDiagnostic(t *testing.T) {
	lib := parseTestDoc(t)
	if len(lib.Diags) != 1 {
		t.Fatalf("got %d diags; want 1", len(lib.Diags))
	}
	d := lib.Diags[0]
	ttesting.AssertEqualInt(t, "diag line", d.Line, 3)
	ttesting.AssertEqualInt(t, "diag sprite", d.Sprite, 2)
	if !strings.Contains(d.Msg, `"x"`) {
		t.Errorf("diag %q does not name the bad field", d.Msg)
	}
}

func TestParseLibraryTrimsExcessData(t *testing.T) {
	lib := parseTestDoc(t)

	// 16x1 wants 4 words; the lamp line carries 6.
	lamp := lib.Sprites[1]
	ttesting.AssertEqualInt(t, "lamp words", len(lamp.Data), 4)

	// 32x1 wants (32/16)*4*1 = 8 words; the line carries 10.
	wide := lib.Sprites[3]
	ttesting.AssertEqualInt(t, "wide words", len(wide.Data), 8)
}

func TestExpectedWords(t *testing.T) {
	for _, tt := range []struct {
		w, h, want int
	}{
		{16, 24, 96},
		{16, 1, 4},
		{32, 2, 16},
		{8, 3, 12},  // narrower than one span still pays for a full one
		{20, 2, 8},  // width not a multiple of 16 falls back to one span
		{16, 0, 0},  // zero rows want nothing; the floor only guards width 0
	} {
		got := expectedWords(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("expectedWords(%d, %d) = %d; want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestParseLibraryBadHeader(t *testing.T) {
	for _, doc := range []string{
		"",
		"justonefield",
		`"NAME",abc`,
		`"NAME",12.5`,
	} {
		_, err := ParseLibrary(doc)
		if err == nil {
			t.Errorf("ParseLibrary(%q): no error", doc)
			continue
		}
		if _, ok := err.(FormatError); !ok {
			t.Errorf("ParseLibrary(%q): err is %T, want FormatError", doc, err)
		}
	}
}

func TestParseLibraryRecordErrorsAreNotFatal(t *testing.T) {
	lib, err := ParseLibrary(`"ONLYBAD",1
notanumber,"X",16,1,1,2,3,4
1,"Y",sixteen,1,1,2,3,4
2,"Z",16,one,1,2,3,4
3,"W",-16,1,1,2,3,4
4,"V",16,1,1,2,zap,4
tooshort
`)
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	ttesting.AssertEqualInt(t, "parsed sprites", len(lib.Sprites), 0)
	ttesting.AssertEqualInt(t, "diags", len(lib.Diags), 6)
}

func TestParseLibrarySkipsBlankLines(t *testing.T) {
	lib, err := ParseLibrary("\"GAPPY\",2\n\n1,\"A\",16,1,1,2,3,4\n   \n2,\"B\",16,1,5,6,7,8\n\n")
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	ttesting.AssertEqualInt(t, "parsed sprites", len(lib.Sprites), 2)
	ttesting.AssertEqualInt(t, "diags", len(lib.Diags), 0)
}

func TestParseLibraryDeclaredCountIsAdvisory(t *testing.T) {
	lib, err := ParseLibrary("\"LIARS\",99\n1,\"A\",16,1,1,2,3,4\n")
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	ttesting.AssertEqualInt(t, "declared", lib.Declared, 99)
	ttesting.AssertEqualInt(t, "parsed", len(lib.Sprites), 1)
}

func TestDecodeAll(t *testing.T) {
	lib, err := DecodeAll(strings.NewReader(testDoc))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	ttesting.AssertEqualString(t, "library name", lib.Name, "TESTLIB")
	ttesting.AssertEqualInt(t, "parsed sprites", len(lib.Sprites), 4)
}

func TestFormatErrorMessage(t *testing.T) {
	err := FormatError("boom")
	ttesting.AssertEqualString(t, "error text", err.Error(), "lbr: invalid format: boom")
}
