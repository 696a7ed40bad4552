// Package lbr parses MinerVGA sprite library files (MINERVGA.LBR) and
// rasterizes their records into indexed-color pixel grids.
//
// The on-disk format is a CSV-like text file. The first line names the
// library and declares a sprite count; every following non-blank line
// is one sprite record:
//
//	index,"name",width,height,word,word,word,...
//
// Data words are signed 16-bit integers, four per pixel row, one per
// VGA bit plane. The format predates any sane serialization library,
// so quoting is primitive (a quote toggles comma significance, nothing
// is escaped) and records in the wild are frequently malformed. The
// parser therefore fails hard only on the header; bad records and
// short data are reported as Diags and decoding carries on.
package lbr
