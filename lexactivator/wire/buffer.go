package wire

// Buffer capacities used by the engine calls, in code units.
const (
	ShortCapacity  = 256
	MediumCapacity = 1024
	LargeCapacity  = 4096
)

// Text is an encoded, null-terminated engine string argument.
// Keep it reachable until the call that uses Ptr returns.
type Text []Unit

// Ptr returns the address of the first code unit.
func (t Text) Ptr() *Unit {
	if len(t) == 0 {
		t = Text{0}
	}
	return &t[0]
}

// Buffer is a caller-owned, fixed-capacity output buffer for one engine call.
// It must not be shared between calls or goroutines.
type Buffer struct {
	units []Unit
}

// NewBuffer returns a zeroed buffer holding capacity code units.
// Capacities below 1 are raised to 1 so the engine always has room for the
// terminator.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{units: make([]Unit, capacity)}
}

// Ptr returns the address handed to the engine.
func (b *Buffer) Ptr() *Unit { return &b.units[0] }

// Cap returns the capacity passed alongside Ptr.
func (b *Buffer) Cap() uint32 { return uint32(len(b.units)) }

// String decodes the buffer contents into a new Go string.
func (b *Buffer) String() string { return Decode(b.units) }
