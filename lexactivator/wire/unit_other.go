//go:build !windows

package wire

// Unit is one code unit of the engine's string type (char outside Windows).
type Unit = byte

// Encode returns s in the engine's native narrow encoding.
func Encode(s string) Text { return Text(EncodeNarrow(s)) }

// Decode reads engine text from buf without going past len(buf).
func Decode(buf []Unit) string { return DecodeNarrow(buf) }
