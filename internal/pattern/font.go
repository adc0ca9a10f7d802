package pattern

// 5×5 glyphs, one byte per row, bit 4 is the leftmost column. Characters
// without a glyph render blank but still take up an advance.
var glyphs = map[rune][5]uint8{
	'A': {0x0E, 0x11, 0x1F, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x1E, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x11, 0x0E},
	'D': {0x1E, 0x11, 0x11, 0x11, 0x1E},
	'E': {0x1F, 0x10, 0x1E, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x1E, 0x10, 0x10},
	'G': {0x0E, 0x10, 0x13, 0x11, 0x0E},
	'H': {0x11, 0x11, 0x1F, 0x11, 0x11},
	'I': {0x1F, 0x04, 0x04, 0x04, 0x1F},
	'J': {0x07, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x1C, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x1E, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x1E, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x0E, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x15, 0x1B, 0x11},
	'X': {0x11, 0x0A, 0x04, 0x0A, 0x11},
	'Y': {0x11, 0x0A, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x02, 0x04, 0x08, 0x1F},
	'0': {0x0E, 0x13, 0x15, 0x19, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x06, 0x08, 0x1F},
	'3': {0x1E, 0x01, 0x06, 0x01, 0x1E},
	'4': {0x02, 0x06, 0x0A, 0x1F, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x1E},
	'6': {0x0E, 0x10, 0x1E, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x04},
	'8': {0x0E, 0x11, 0x0E, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x0F, 0x01, 0x0E},
	'-': {0x00, 0x00, 0x0E, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x04},
	'!': {0x04, 0x04, 0x04, 0x00, 0x04},
	':': {0x00, 0x04, 0x00, 0x04, 0x00},
	'?': {0x0E, 0x11, 0x06, 0x00, 0x04},
	' ': {},
}
