package wire

import "unicode/utf16"

// EncodeWide returns s as null-terminated UTF-16 code units.
func EncodeWide(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// DecodeWide returns the text in buf up to the first zero unit, or all of buf
// if it holds no terminator. Unpaired surrogates decode as U+FFFD.
func DecodeWide(buf []uint16) string {
	for i, u := range buf {
		if u == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
