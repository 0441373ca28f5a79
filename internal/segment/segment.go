// Package segment converts characters, strings and numbers into the
// per-cell segment masks of a multiplexed seven segment display.
//
// A Bitmap holds one mask per cell, cell 0 being the leftmost digit. Input
// that does not fit is truncated and every decimal point is lit to show it.
package segment

import (
	"strings"
	"unicode/utf8"
)

const (
	// CellCount is the number of digits of the display.
	CellCount = 4
	// SegmentCount is the number of segments per digit (7 plus decimal point).
	SegmentCount = 8
)

// Bitmap is the target state of every cell of the display.
type Bitmap [CellCount]uint8

// FromBits returns a Bitmap with every cell set to bits.
func FromBits(bits uint8) Bitmap {
	var b Bitmap
	for i := range b {
		b[i] = bits
	}
	return b
}

// FromString maps s left-aligned into the cells. Trailing cells stay
// blank. If s has more characters than cells, the extra characters are
// dropped and every decimal point is lit.
func FromString(s string) Bitmap {
	var b Bitmap
	i := 0
	for _, r := range s {
		if i == CellCount {
			break
		}
		b[i] = Lookup(r)
		i++
	}
	if utf8.RuneCountInString(s) > CellCount {
		b.Or(Decimal)
	}
	return b
}

// FromChars maps exactly one character per cell.
func FromChars(chars [CellCount]rune) Bitmap {
	var b Bitmap
	for i, r := range chars {
		b[i] = Lookup(r)
	}
	return b
}

// FromNumber renders number right-aligned. Cells left of the most
// significant digit keep padding. A number with more digits than cells
// keeps its low digits and lights every decimal point.
func FromNumber(number uint, padding uint8) Bitmap {
	b := FromBits(padding)
	for i := CellCount - 1; i >= 0; i-- {
		b[i] = Digits[number%10]
		number /= 10
		if number == 0 {
			break
		}
	}
	if number > 0 {
		b.Or(Decimal)
	}
	return b
}

// Or sets bits in every cell.
func (b *Bitmap) Or(bits uint8) {
	for i := range b {
		b[i] |= bits
	}
}

// IsBlank reports whether no segment is lit.
func (b Bitmap) IsBlank() bool {
	return b == Bitmap{}
}

// String decodes the bitmap back to text for logs. Cells whose mask is not
// in the font are shown as '?', a lit decimal point is appended as '.'.
func (b Bitmap) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, bits := range b {
		sb.WriteRune(decode(bits &^ Decimal))
		if bits&Decimal != 0 {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// decode finds the first printable character rendered as bits.
func decode(bits uint8) rune {
	if bits == 0 {
		return ' '
	}
	for d, v := range Digits {
		if v == bits {
			return rune('0' + d)
		}
	}
	for r := ' '; r < utf8.RuneSelf; r++ {
		if AsciiTable[r] == bits {
			return r
		}
	}
	return '?'
}
