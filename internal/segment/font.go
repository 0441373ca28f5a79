package segment

// Segment bits. Bit 0 is segment A (top), going clockwise to F, G is the
// middle bar and bit 7 is the decimal point.
//
//	 -A-
//	F   B
//	 -G-
//	E   C
//	 -D-  .DP
const (
	SegA    uint8 = 0b0000_0001
	SegB    uint8 = 0b0000_0010
	SegC    uint8 = 0b0000_0100
	SegD    uint8 = 0b0000_1000
	SegE    uint8 = 0b0001_0000
	SegF    uint8 = 0b0010_0000
	SegG    uint8 = 0b0100_0000
	Decimal uint8 = 0b1000_0000
)

// Digits maps 0-9 to their segments.
var Digits = [10]uint8{
	0x3F, // 0
	0x06, // 1
	0x5B, // 2
	0x4F, // 3
	0x66, // 4
	0x6D, // 5
	0x7D, // 6
	0x07, // 7
	0x7F, // 8
	0x6F, // 9
}

// AsciiTable maps every 7-bit character to its segments. Characters a
// seven segment cell cannot show are blank.
var AsciiTable = [128]uint8{
	' ':  0x00,
	'!':  0x86,
	'"':  0x22,
	'\'': 0x20,
	'(':  0x39,
	')':  0x0F,
	',':  0x80,
	'-':  0x40,
	'.':  0x80,
	'0':  0x3F,
	'1':  0x06,
	'2':  0x5B,
	'3':  0x4F,
	'4':  0x66,
	'5':  0x6D,
	'6':  0x7D,
	'7':  0x07,
	'8':  0x7F,
	'9':  0x6F,
	'=':  0x48,
	'?':  0x53,
	'A':  0x77,
	'B':  0x7C,
	'C':  0x39,
	'D':  0x5E,
	'E':  0x79,
	'F':  0x71,
	'G':  0x3D,
	'H':  0x76,
	'I':  0x30,
	'J':  0x1E,
	'K':  0x75,
	'L':  0x38,
	'M':  0x37,
	'N':  0x54,
	'O':  0x3F,
	'P':  0x73,
	'Q':  0x67,
	'R':  0x50,
	'S':  0x6D,
	'T':  0x78,
	'U':  0x3E,
	'V':  0x3E,
	'W':  0x2A,
	'X':  0x76,
	'Y':  0x6E,
	'Z':  0x5B,
	'[':  0x39,
	']':  0x0F,
	'_':  0x08,
	'a':  0x5F,
	'b':  0x7C,
	'c':  0x58,
	'd':  0x5E,
	'e':  0x7B,
	'f':  0x71,
	'g':  0x6F,
	'h':  0x74,
	'i':  0x10,
	'j':  0x0C,
	'k':  0x75,
	'l':  0x30,
	'm':  0x14,
	'n':  0x54,
	'o':  0x5C,
	'p':  0x73,
	'q':  0x67,
	'r':  0x50,
	's':  0x6D,
	't':  0x78,
	'u':  0x1C,
	'v':  0x1C,
	'w':  0x14,
	'x':  0x76,
	'y':  0x6E,
	'z':  0x5B,
}

// Lookup returns the segments for r. Runes outside the table are blank.
func Lookup(r rune) uint8 {
	if r < 0 || int(r) >= len(AsciiTable) {
		return 0
	}
	return AsciiTable[r]
}
