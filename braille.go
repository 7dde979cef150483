package braillecam

// Pattern represents an 8 dot braille pattern, one bit per dot. Bit i
// maps to the dot at dotOffsets[i] within a 2x4 cell:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
// The bit order follows the unicode braille numbering, where the cell
// dots are identified column-major for the top six and left-right for
// the bottom two:
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
type Pattern uint8

// dotOffsets maps bit index to the (dx, dy) of its dot within the cell.
var dotOffsets = [8]struct{ dx, dy int }{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{0, 3}, {1, 3},
}

// Rune returns the unicode braille symbol for the pattern, one of the
// 256 code points in [U+2800, U+28FF].
func (p Pattern) Rune() rune {
	return rune(p) + '\u2800'
}

// String returns the pattern's braille symbol. One of:
//  ⣿ ⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏⠐⠑⠒⠓⠔⠕⠖⠗⠘⠙⠚⠛⠜⠝⠞⠟ ...
func (p Pattern) String() string {
	return string(p.Rune())
}

// AppendUTF8 appends the pattern's braille symbol to buf as exactly
// three bytes. Every braille code point sits in the 3-byte UTF-8 range,
// so the encoding can be done with fixed shifts instead of
// utf8.EncodeRune.
func (p Pattern) AppendUTF8(buf []byte) []byte {
	cp := 0x2800 + int(p)
	return append(buf,
		byte(0xE0|cp>>12&0x0F),
		byte(0x80|cp>>6&0x3F),
		byte(0x80|cp&0x3F),
	)
}
