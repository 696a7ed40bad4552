package lbr

// planeCount is the number of bit planes per pixel row. 16-color VGA
// mode 12h has exactly four; the format stores no plane count of its
// own.
const planeCount = 4

// unsigned16 reinterprets a plane word's bits as unsigned. Negative
// words are two's complement, so -1 maps to 0xFFFF, never to 1.
func unsigned16(v int16) uint16 {
	return uint16(v)
}

// planeBits expands one plane word into its 16 pixel bits in on-screen
// order. Bit extraction is MSB first, then the byte halves swap: the
// low byte of the word paints the left half of the row. The swap is
// part of the format, inherited from how the original renderer fed
// words to the VGA latches.
func planeBits(v int16) [16]uint8 {
	u := unsigned16(v)
	var bits [16]uint8
	for i := 0; i < 16; i++ {
		bits[i] = uint8((u >> (15 - i)) & 1)
	}
	var row [16]uint8
	copy(row[0:8], bits[8:16])
	copy(row[8:16], bits[0:8])
	return row
}
