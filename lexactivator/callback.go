package lexactivator

import (
	"sync"

	"go.uber.org/zap"
)

// Listener receives license events raised by the engine's background sync.
// It runs on a thread owned by the engine and must not install or clear
// listeners itself.
type Listener func(Code)

// listenerSlot holds the one listener the process may have installed. The
// engine accepts a single callback address, so the slot is shared by every
// Client.
type listenerSlot struct {
	mu       sync.Mutex
	listener Listener
	logger   *zap.Logger
	metrics  *metrics
}

var slot listenerSlot

func (s *listenerSlot) install(l Listener, logger *zap.Logger, m *metrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
	s.logger = logger
	s.metrics = m
}

func (s *listenerSlot) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = nil
	s.logger = nil
	s.metrics = nil
}

func (s *listenerSlot) installed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener != nil
}

// dispatchLicenseEvent is the Go side of the engine callback. It is handed
// to the engine once per library and never changes.
func dispatchLicenseEvent(raw int32) {
	code := Classify(raw)

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.listener == nil {
		return
	}
	if slot.metrics != nil {
		slot.metrics.events.WithLabelValues(kindOf(code)).Inc()
	}
	if !known(raw) && slot.logger != nil {
		slot.logger.Warn("unrecognized license event code", zap.Int32("code", raw))
	}
	slot.invoke(code)
}

// invoke runs the listener with slot.mu held. A panic is contained here so
// it never unwinds into the engine thread.
func (s *listenerSlot) invoke(code Code) {
	defer func() {
		if r := recover(); r != nil {
			if s.metrics != nil {
				s.metrics.listenerPanics.Inc()
			}
			if s.logger != nil {
				s.logger.Error("license listener panicked",
					zap.Stringer("code", code),
					zap.Any("panic", r))
			}
		}
	}()
	s.listener(code)
}

func resetListenerSlot() {
	slot.clear()
}
