package lbr

import "testing"

func TestUnsigned16(t *testing.T) {
	for _, tt := range []struct {
		in   int16
		want uint16
	}{
		{0, 0},
		{1, 1},
		{32767, 32767},
		{-1, 65535},
		{-256, 65280},
		{-32768, 32768},
	} {
		if got := unsigned16(tt.in); got != tt.want {
			t.Errorf("unsigned16(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestPlaneBitsHalfSwap(t *testing.T) {
	// 0xFF00: high byte set, low byte clear. After the half swap the
	// clear low byte comes out first.
	bits := planeBits(-256)
	for x := 0; x < 8; x++ {
		if bits[x] != 0 {
			t.Errorf("planeBits(-256)[%d] = %d; want 0", x, bits[x])
		}
	}
	for x := 8; x < 16; x++ {
		if bits[x] != 1 {
			t.Errorf("planeBits(-256)[%d] = %d; want 1", x, bits[x])
		}
	}
}

func TestPlaneBitsSingleBits(t *testing.T) {
	for _, tt := range []struct {
		word int16
		x    int
	}{
		{1, 7},       // low byte LSB paints the left half's right edge
		{128, 0},     // low byte MSB paints column 0
		{256, 15},    // high byte LSB paints the rightmost column
		{-32768, 8},  // high byte MSB paints column 8
	} {
		bits := planeBits(tt.word)
		for x := 0; x < 16; x++ {
			want := uint8(0)
			if x == tt.x {
				want = 1
			}
			if bits[x] != want {
				t.Errorf("planeBits(%d)[%d] = %d; want %d", tt.word, x, bits[x], want)
			}
		}
	}
}

func TestPlaneBitsAllOnOff(t *testing.T) {
	for x, b := range planeBits(0) {
		if b != 0 {
			t.Errorf("planeBits(0)[%d] = %d; want 0", x, b)
		}
	}
	for x, b := range planeBits(-1) {
		if b != 1 {
			t.Errorf("planeBits(-1)[%d] = %d; want 1", x, b)
		}
	}
}
