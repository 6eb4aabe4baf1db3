// Package abi binds the flat C entry points of the native LexActivator
// library to typed Go function values.
//
// Every entry point returns a single int32 status code. Text arguments are
// null-terminated [wire.Text] values and text results are written into
// caller-owned [wire.Buffer] memory, so nothing allocated by the engine ever
// crosses back into Go.
//
// The library is loaded at run time (dlopen on Unix, LoadLibrary on Windows)
// through purego, which keeps cgo out of the build. Symbols missing from an
// older engine release leave their field nil and are listed by
// [Library.Missing].
package abi
