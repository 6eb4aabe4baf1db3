package abi

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbols_CoverEveryEntryPoint(t *testing.T) {
	l := &Library{}
	symbols := l.symbols()

	names := make(map[string]bool)
	for _, s := range symbols {
		assert.False(t, names[s.name], "duplicate symbol %s", s.name)
		names[s.name] = true
		assert.Equal(t, reflect.Pointer, reflect.TypeOf(s.fptr).Kind(), s.name)
	}

	// Every exported func field is bound, plus the raw callback setter.
	exported := 0
	typ := reflect.TypeOf((*Library)(nil)).Elem()
	for i := 0; i < typ.NumField(); i++ {
		if f := typ.Field(i); f.IsExported() && f.Type.Kind() == reflect.Func {
			exported++
		}
	}
	assert.Equal(t, exported, len(symbols))
}

func TestDefaultLibraryName(t *testing.T) {
	want := map[string]string{
		"windows": "LexActivator.dll",
		"darwin":  "libLexActivator.dylib",
	}[runtime.GOOS]
	if want == "" {
		want = "libLexActivator.so"
	}
	assert.Equal(t, want, DefaultLibraryName())
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/nonexistent/dir/libLexActivator.so")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/dir/libLexActivator.so")
}

func TestForwardEvent(t *testing.T) {
	l := &Library{}
	assert.Equal(t, uintptr(0), l.forwardEvent(21))

	var got []int32
	cb := Callback(func(code int32) { got = append(got, code) })
	l.forward.Store(&cb)
	l.forwardEvent(21)
	l.forwardEvent(59)
	assert.Equal(t, []int32{21, 59}, got)
}

func TestMissing_ReturnsCopy(t *testing.T) {
	l := &Library{missing: []string{"GetActivationLastSyncedDate"}}
	m := l.Missing()
	m[0] = "changed"
	assert.Equal(t, []string{"GetActivationLastSyncedDate"}, l.Missing())
}
