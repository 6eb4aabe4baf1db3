// Package wire converts text between Go strings and the null-terminated
// code-unit buffers the native engine reads and writes.
//
// The engine takes wide (UTF-16) strings on Windows and narrow (UTF-8 byte)
// strings everywhere else. [Unit], [Encode] and [Decode] follow the build
// target; the explicit Wide and Narrow variants are available on every
// platform.
//
// Output values use the caller-allocates convention: the caller hands the
// engine a zeroed [Buffer] and its capacity, the engine fills it and
// null-terminates within capacity, and [Buffer.String] copies the result
// into an owned Go string.
package wire
