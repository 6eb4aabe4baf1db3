package lexactivator

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/abi"
	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// Client exposes the engine's capabilities as typed Go calls.
//
// The engine keeps its own process-wide state, so several Clients over the
// same library observe and change the same license. A Client adds no locking
// of its own; calls are forwarded to the engine in the order they are made.
type Client struct {
	lib         *abi.Library
	libraryPath string
	logger      *zap.Logger
	registerer  prometheus.Registerer
	metrics     *metrics
	minCapacity uint32
}

// New loads the engine library and returns a Client bound to it.
// Without WithLibrary the library is loaded from WithLibraryPath, or from
// the platform default name through the loader's search path.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		logger:  zap.NewNop(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.registerer != nil {
		if err := c.metrics.register(c.registerer); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	if c.lib == nil {
		lib, err := abi.Open(c.libraryPath)
		if err != nil {
			c.logger.Error("failed to load engine library",
				zap.String("path", c.libraryPath),
				zap.Error(err))
			return nil, err
		}
		c.lib = lib
	}
	if missing := c.lib.Missing(); len(missing) > 0 {
		c.logger.Warn("engine library does not export every entry point",
			zap.String("path", c.lib.Path()),
			zap.Strings("symbols", missing))
	}
	return c, nil
}

// Library returns the bound engine library.
func (c *Client) Library() *abi.Library {
	return c.lib
}

// invoke runs one entry point and classifies the returned code.
func (c *Client) invoke(function string, fn func() int32) Code {
	raw := fn()
	code := Classify(raw)
	c.metrics.calls.WithLabelValues(function, kindOf(code)).Inc()
	if !known(raw) {
		c.logger.Warn("unrecognized engine code",
			zap.String("function", function),
			zap.Int32("code", raw))
	} else {
		c.logger.Debug("engine call",
			zap.String("function", function),
			zap.Int32("code", raw))
	}
	return code
}

// check maps a code from a call that produces no status to an error.
func check(function string, code Code) error {
	switch v := code.(type) {
	case Status:
		if v == StatusOK {
			return nil
		}
		return &StatusError{Function: function, Status: v}
	case ErrorCode:
		return v
	}
	return ErrClient
}

// statusOf maps a code from a status-producing call. Errors carry
// StatusFail so an ignored error never reads as StatusOK.
func statusOf(code Code) (Status, error) {
	switch v := code.(type) {
	case Status:
		return v, nil
	case ErrorCode:
		return StatusFail, v
	}
	return StatusFail, ErrClient
}

func unavailable(function string) error {
	return &UnavailableError{Function: function}
}

func (c *Client) buffer(capacity uint32) *wire.Buffer {
	return wire.NewBuffer(int(max(capacity, c.minCapacity)))
}

// do runs a call that produces nothing.
func (c *Client) do(function string, fn func() int32) error {
	if fn == nil {
		return unavailable(function)
	}
	return check(function, c.invoke(function, fn))
}

// status runs a call whose result is a Status.
func (c *Client) status(function string, fn func() int32) (Status, error) {
	if fn == nil {
		return StatusFail, unavailable(function)
	}
	return statusOf(c.invoke(function, fn))
}

// setText passes one text argument.
func (c *Client) setText(function string, fn func(*wire.Unit) int32, value string) error {
	if fn == nil {
		return unavailable(function)
	}
	arg := wire.Encode(value)
	return check(function, c.invoke(function, func() int32 { return fn(arg.Ptr()) }))
}

// setPair passes two text arguments.
func (c *Client) setPair(function string, fn func(a, b *wire.Unit) int32, a, b string) error {
	if fn == nil {
		return unavailable(function)
	}
	argA, argB := wire.Encode(a), wire.Encode(b)
	return check(function, c.invoke(function, func() int32 { return fn(argA.Ptr(), argB.Ptr()) }))
}

// getText reads one text result into a fresh buffer of at least capacity
// units.
func (c *Client) getText(function string, fn func(*wire.Unit, uint32) int32, capacity uint32) (string, error) {
	if fn == nil {
		return "", unavailable(function)
	}
	buf := c.buffer(capacity)
	code := c.invoke(function, func() int32 { return fn(buf.Ptr(), buf.Cap()) })
	if err := check(function, code); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// getKeyed reads the text value stored under key.
func (c *Client) getKeyed(function string, fn func(key, value *wire.Unit, length uint32) int32, key string, capacity uint32) (string, error) {
	if fn == nil {
		return "", unavailable(function)
	}
	arg := wire.Encode(key)
	buf := c.buffer(capacity)
	code := c.invoke(function, func() int32 { return fn(arg.Ptr(), buf.Ptr(), buf.Cap()) })
	if err := check(function, code); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// getDate reads a Unix timestamp in seconds. Zero means no date.
func (c *Client) getDate(function string, fn func(*uint32) int32) (time.Time, error) {
	if fn == nil {
		return time.Time{}, unavailable(function)
	}
	var secs uint32
	if err := check(function, c.invoke(function, func() int32 { return fn(&secs) })); err != nil {
		return time.Time{}, err
	}
	if secs == 0 {
		return time.Time{}, nil
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

func (c *Client) getUint32(function string, fn func(*uint32) int32) (uint32, error) {
	if fn == nil {
		return 0, unavailable(function)
	}
	var v uint32
	if err := check(function, c.invoke(function, func() int32 { return fn(&v) })); err != nil {
		return 0, err
	}
	return v, nil
}

func (c *Client) getInt64(function string, fn func(*int64) int32) (int64, error) {
	if fn == nil {
		return 0, unavailable(function)
	}
	var v int64
	if err := check(function, c.invoke(function, func() int32 { return fn(&v) })); err != nil {
		return 0, err
	}
	return v, nil
}

// SetLicenseCallback installs l as the process-wide license listener,
// replacing any previous one. The engine calls it from its background sync
// thread, typically after IsLicenseGenuine or ActivateLicense schedules a
// server sync. On failure the previous listener stays installed.
func (c *Client) SetLicenseCallback(l Listener) error {
	const function = "SetLicenseCallback"
	if l == nil {
		return fmt.Errorf("lexactivator: %s: nil listener", function)
	}
	set := c.lib.SetLicenseCallback
	if set == nil {
		return unavailable(function)
	}
	code := c.invoke(function, func() int32 { return set(dispatchLicenseEvent) })
	if err := check(function, code); err != nil {
		return err
	}
	slot.install(l, c.logger, c.metrics)
	return nil
}

// UnsetLicenseCallback removes the installed listener. Events raised
// afterwards are dropped.
func (c *Client) UnsetLicenseCallback() {
	slot.clear()
	c.logger.Debug("license listener cleared")
}
