package lexactivator

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

type recorder struct {
	mu    sync.Mutex
	codes []Code
}

func (r *recorder) listen(code Code) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func (r *recorder) got() []Code {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Code(nil), r.codes...)
}

func TestCallback_Dispatch(t *testing.T) {
	c, eng := newTestClient(t)

	// Nothing installed: the event is dropped.
	dispatchLicenseEvent(0)
	assert.False(t, slot.installed())

	var rec recorder
	require.NoError(t, c.SetLicenseCallback(rec.listen))
	require.True(t, eng.Fire(21))

	assert.Equal(t, []Code{StatusSuspended}, rec.got())
}

func TestCallback_ClassifiesErrorsAndUnknownCodes(t *testing.T) {
	c, eng := newTestClient(t)
	var rec recorder
	require.NoError(t, c.SetLicenseCallback(rec.listen))

	eng.Fire(53)
	eng.Fire(9999)

	assert.Equal(t, []Code{ErrRevoked, ErrClient}, rec.got())
}

func TestCallback_Replace(t *testing.T) {
	c, eng := newTestClient(t)
	var first, second recorder

	require.NoError(t, c.SetLicenseCallback(first.listen))
	eng.Fire(0)
	require.NoError(t, c.SetLicenseCallback(second.listen))
	eng.Fire(20)

	assert.Equal(t, []Code{StatusOK}, first.got())
	assert.Equal(t, []Code{StatusExpired}, second.got())
}

func TestCallback_Unset(t *testing.T) {
	c, eng := newTestClient(t)
	var rec recorder
	require.NoError(t, c.SetLicenseCallback(rec.listen))

	c.UnsetLicenseCallback()
	eng.Fire(21)

	assert.Empty(t, rec.got())
	assert.False(t, slot.installed())
}

func TestCallback_RegistrationFailureKeepsListener(t *testing.T) {
	c, eng := newTestClient(t)
	var kept, rejected recorder
	require.NoError(t, c.SetLicenseCallback(kept.listen))

	eng.RespondCode("SetLicenseCallback", 42)
	err := c.SetLicenseCallback(rejected.listen)
	assert.Equal(t, ErrProductData, err)

	dispatchLicenseEvent(0)
	assert.Equal(t, []Code{StatusOK}, kept.got())
	assert.Empty(t, rejected.got())
}

func TestCallback_NilListener(t *testing.T) {
	c, _ := newTestClient(t)
	assert.Error(t, c.SetLicenseCallback(nil))
}

func TestCallback_Unavailable(t *testing.T) {
	c, eng := newTestClient(t)
	eng.Library().SetLicenseCallback = nil

	err := c.SetLicenseCallback(func(Code) {})
	assert.ErrorIs(t, err, ErrClient)
	assert.False(t, slot.installed())
}

func TestCallback_PanicIsContained(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	c, eng := newTestClient(t, WithLogger(zap.New(core)))

	calls := 0
	require.NoError(t, c.SetLicenseCallback(func(Code) {
		calls++
		panic("listener bug")
	}))

	assert.NotPanics(t, func() { eng.Fire(21) })
	assert.NotPanics(t, func() { eng.Fire(22) })

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, logs.FilterMessage("license listener panicked").Len())
	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.listenerPanics))
	// The slot lock was released despite the panics.
	assert.True(t, slot.installed())
}

func TestCallback_EventMetrics(t *testing.T) {
	c, eng := newTestClient(t)
	require.NoError(t, c.SetLicenseCallback(func(Code) {}))

	eng.Fire(0)
	eng.Fire(21)
	eng.Fire(59)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.events.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.events.WithLabelValues("status")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.events.WithLabelValues("error")))
}

// Installs, clears and engine-thread invocations race against each other.
// Every delivered event must reach a fully installed listener exactly once.
func TestCallback_ConcurrentInstallClearInvoke(t *testing.T) {
	c, eng := newTestClient(t)

	const (
		installers = 4
		firers     = 4
		rounds     = 200
	)

	var delivered atomic.Int64
	var torn atomic.Int64
	listenerFor := func(id int) Listener {
		owner := id
		return func(code Code) {
			if owner != id || code != StatusOK {
				torn.Add(1)
			}
			delivered.Add(1)
		}
	}

	var g errgroup.Group
	for i := 0; i < installers; i++ {
		g.Go(func() error {
			for r := 0; r < rounds; r++ {
				if r%3 == 0 {
					c.UnsetLicenseCallback()
					continue
				}
				if err := c.SetLicenseCallback(listenerFor(i*rounds + r)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	var fired atomic.Int64
	for i := 0; i < firers; i++ {
		g.Go(func() error {
			for r := 0; r < rounds; r++ {
				eng.Fire(0)
				fired.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Zero(t, torn.Load())
	assert.LessOrEqual(t, delivered.Load(), fired.Load())
}
