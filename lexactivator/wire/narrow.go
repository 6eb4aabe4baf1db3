package wire

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// EncodeNarrow returns s as a null-terminated UTF-8 byte string.
//
// Embedded NUL characters are removed first: the engine would stop reading at
// the first one. Invalid UTF-8 in s is replaced with U+FFFD.
func EncodeNarrow(s string) []byte {
	s = strings.ReplaceAll(s, "\x00", "")
	b, err := unicode.UTF8.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// The UTF-8 encoder replaces rather than fails; keep the raw bytes
		// if a future version ever reports an error.
		b = []byte(s)
	}
	out := make([]byte, len(b)+1)
	copy(out, b)
	return out
}

// DecodeNarrow returns the text in buf up to the first NUL byte, or all of buf
// if it holds no terminator. Invalid sequences decode as U+FFFD.
func DecodeNarrow(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	if len(buf) == 0 {
		return ""
	}
	s, err := unicode.UTF8.NewDecoder().Bytes(buf)
	if err != nil {
		return strings.ToValidUTF8(string(buf), "\uFFFD")
	}
	return string(s)
}
