package lbr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// FormatError reports that an input document is not a sprite library
// at all. Defects inside individual records never produce one; those
// become Diags on the Library instead.
type FormatError string

func (e FormatError) Error() string {
	return "lbr: invalid format: " + string(e)
}

// Diag describes a non-fatal defect observed while decoding, such as a
// skipped record or a sprite with fewer data words than its dimensions
// call for.
type Diag struct {
	Line   int    // 1-based input line, or 0 when not tied to a line
	Sprite int    // declared sprite index, or -1 when unknown
	Msg    string
}

func (d Diag) String() string {
	switch {
	case d.Line > 0:
		return fmt.Sprintf("line %d: %s", d.Line, d.Msg)
	case d.Sprite >= 0:
		return fmt.Sprintf("sprite %d: %s", d.Sprite, d.Msg)
	}
	return d.Msg
}

// SpriteRecord is one parsed library entry: display metadata plus the
// raw plane words, trimmed to the length the dimensions call for.
type SpriteRecord struct {
	Index  int    // index declared in the file, display metadata only
	Name   string // name with surrounding quotes stripped
	Width  int
	Height int
	Data   []int16 // plane words, 4 per pixel row
}

// Library is an ordered set of sprite records decoded from one file.
type Library struct {
	Name     string
	Declared int // sprite count the header declares; advisory only
	Sprites  []SpriteRecord
	Diags    []Diag // defects skipped over during parsing
}

// DecodeAll reads a whole .LBR document from r and parses it.
func DecodeAll(r io.Reader) (*Library, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read lbr document: %s", err)
	}
	return ParseLibrary(string(b))
}

// ParseLibrary parses an entire .LBR document. The first line must be
// a well-formed header or a FormatError is returned. Every following
// non-blank line is parsed as a sprite record; records that cannot be
// parsed are skipped, appending a Diag, and never fail the run. The
// returned library's Sprites keep file order, which is the order all
// other packages identify sprites by.
func ParseLibrary(text string) (*Library, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	lib := &Library{}
	if err := lib.parseHeader(lines[0]); err != nil {
		return nil, err
	}
	glog.V(1).Infof("lbr: library %q declares %d sprites", lib.Name, lib.Declared)

	for i, line := range lines[1:] {
		lineNo := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, diag := parseRecord(lineNo, line)
		if diag != nil {
			glog.Warningf("lbr: skipping record: %s", diag)
			lib.Diags = append(lib.Diags, *diag)
			continue
		}
		lib.Sprites = append(lib.Sprites, *rec)
	}
	if lib.Declared != len(lib.Sprites) {
		glog.V(1).Infof("lbr: header declares %d sprites, parsed %d", lib.Declared, len(lib.Sprites))
	}
	return lib, nil
}

// parseHeader consumes the `"name",count` first line. The header is
// split on plain commas; record quoting rules do not apply to it.
func (lib *Library) parseHeader(line string) error {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return FormatError("header needs a library name and a sprite count")
	}
	lib.Name = strings.Trim(strings.TrimSpace(parts[0]), `"`)
	count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return FormatError(fmt.Sprintf("bad sprite count %q in header", strings.TrimSpace(parts[1])))
	}
	lib.Declared = count
	return nil
}

// parseRecord parses one record line. It returns either a record or a
// Diag explaining why the line was skipped, never both.
func parseRecord(lineNo int, line string) (*SpriteRecord, *Diag) {
	skip := func(sprite int, format string, args ...interface{}) (*SpriteRecord, *Diag) {
		return nil, &Diag{Line: lineNo, Sprite: sprite, Msg: fmt.Sprintf(format, args...)}
	}

	fields := SplitFields(line)
	if len(fields) < 5 {
		return skip(-1, "record has %d fields, want at least 5", len(fields))
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return skip(-1, "bad sprite index %q", fields[0])
	}
	rec := &SpriteRecord{
		Index: idx,
		Name:  strings.Trim(fields[1], `"`),
	}
	if rec.Width, err = strconv.Atoi(fields[2]); err != nil {
		return skip(idx, "bad width %q", fields[2])
	}
	if rec.Height, err = strconv.Atoi(fields[3]); err != nil {
		return skip(idx, "bad height %q", fields[3])
	}
	if rec.Width <= 0 || rec.Height <= 0 {
		return skip(idx, "bad dimensions %dx%d", rec.Width, rec.Height)
	}

	// Dumps from the original game carry trailing terminator words, so
	// anything past the expected length is dropped without complaint.
	// Too few words is legitimate too; the rasterizer zero-fills.
	tokens := fields[4:]
	if want := expectedWords(rec.Width, rec.Height); len(tokens) > want {
		tokens = tokens[:want]
	}
	rec.Data = make([]int16, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return skip(idx, "bad data word %q", tok)
		}
		rec.Data = append(rec.Data, int16(v))
	}
	return rec, nil
}

// expectedWords returns how many data words a record's dimensions call
// for: 4 plane words per pixel row per 16-pixel column span. Widths
// that are not a multiple of 16 get a single span; the format never
// stored more than one word per plane per row in practice.
func expectedWords(width, height int) int {
	want := (width / 16) * 4 * height
	if width%16 != 0 || want == 0 {
		want = 4 * height
	}
	return want
}
