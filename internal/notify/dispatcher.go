package notify

import (
	"log"
	"sync"

	"tradegate/internal/domain"
)

// Listener receives engine events. Implementations must tolerate concurrent
// calls; a slow listener only delays its own deliveries.
type Listener interface {
	OnTrustLevelChanged(from, to domain.TrustLevel, autoExecute bool)
	OnTradeExecuted(rec domain.ExecutionRecord)
	OnUndoRequested(rec domain.ExecutionRecord)
	OnAdvisoryToast(severity domain.Severity, message string)
}

// Dispatcher fans engine events out to registered listeners. Each delivery
// runs on its own goroutine and a panicking listener cannot take the engine
// down with it.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Register(l Listener) {
	d.mu.Lock()
	d.listeners = append(d.listeners, l)
	d.mu.Unlock()
}

func (d *Dispatcher) TrustLevelChanged(from, to domain.TrustLevel) {
	d.dispatch(func(l Listener) { l.OnTrustLevelChanged(from, to, to.AutoExecute()) })
}

func (d *Dispatcher) TradeExecuted(rec domain.ExecutionRecord) {
	d.dispatch(func(l Listener) { l.OnTradeExecuted(rec) })
}

func (d *Dispatcher) UndoRequested(rec domain.ExecutionRecord) {
	d.dispatch(func(l Listener) { l.OnUndoRequested(rec) })
}

func (d *Dispatcher) AdvisoryToast(severity domain.Severity, message string) {
	d.dispatch(func(l Listener) { l.OnAdvisoryToast(severity, message) })
}

func (d *Dispatcher) dispatch(deliver func(Listener)) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()

	for _, l := range listeners {
		go func(l Listener) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("notify: listener panic: %v", r)
				}
			}()
			deliver(l)
		}(l)
	}
}
