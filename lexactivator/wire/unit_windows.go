//go:build windows

package wire

// Unit is one code unit of the engine's string type (wchar_t on Windows).
type Unit = uint16

// Encode returns s in the engine's native wide encoding.
func Encode(s string) Text { return Text(EncodeWide(s)) }

// Decode reads engine text from buf without going past len(buf).
func Decode(buf []Unit) string { return DecodeWide(buf) }
