package stream

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"sync"
	"sync/atomic"
)

// Stream is a source of values of type T.
//
// Subscribe registers a listener for values emitted from now on and
// returns a function to cancel the subscription. Cancelling more than
// once is harmless.
type Stream[T any] interface {
	Subscribe(func(T)) (cancel func())
}

// --- Delivery --------------------------------------------------------------

// subscription is a listener registered with a hub.
type subscription[T any] struct {
	listener  func(T)
	cancelled atomic.Bool
}

// delivery is a value waiting to be delivered, either to all subscriptions
// or to a single one.
type delivery[T any] struct {
	value T
	to    *subscription[T]
}

// hub manages the subscriptions of a stream and serializes deliveries.
// Values emitted during an ongoing delivery (from a listener or from
// another goroutine) are queued and delivered by the goroutine already
// delivering, in order of emission.
type hub[T any] struct {
	mx         sync.Mutex
	subs       []*subscription[T]
	queue      []delivery[T]
	delivering bool
	held       int
}

// add registers a listener. It returns true if it is the first one.
func (h *hub[T]) add(l func(T)) (*subscription[T], bool) {
	h.mx.Lock()
	defer h.mx.Unlock()
	sub := &subscription[T]{listener: l}
	h.subs = append(h.subs, sub)
	return sub, len(h.subs) == 1
}

// remove unregisters a subscription. It returns true if it was the last one.
func (h *hub[T]) remove(sub *subscription[T]) bool {
	h.mx.Lock()
	defer h.mx.Unlock()
	sub.cancelled.Store(true)
	for i, s := range h.subs {
		if s == sub {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			break
		}
	}
	return len(h.subs) == 0
}

// emit delivers v to all current subscriptions.
func (h *hub[T]) emit(v T) {
	h.deliver(delivery[T]{value: v})
}

func (h *hub[T]) deliver(d delivery[T]) {
	h.mx.Lock()
	h.queue = append(h.queue, d)
	if h.delivering || h.held > 0 {
		h.mx.Unlock()
		return
	}
	h.drain()
}

// hold defers deliveries until a matching release.
func (h *hub[T]) hold() {
	h.mx.Lock()
	h.held++
	h.mx.Unlock()
}

// release ends a hold and delivers what has been queued meanwhile.
func (h *hub[T]) release() {
	h.mx.Lock()
	h.held--
	if h.held > 0 || h.delivering || len(h.queue) == 0 {
		h.mx.Unlock()
		return
	}
	h.drain()
}

// drain delivers the queue. It is called with h.mx locked and returns
// with h.mx unlocked.
func (h *hub[T]) drain() {
	h.delivering = true
	defer func() {
		if r := recover(); r != nil {
			h.mx.Lock()
			h.delivering = false
			h.queue = nil
			h.mx.Unlock()
			panic(r)
		}
	}()
	for len(h.queue) > 0 {
		next := h.queue[0]
		h.queue = h.queue[1:]
		targets := []*subscription[T]{next.to}
		if next.to == nil {
			targets = append([]*subscription[T](nil), h.subs...)
		}
		h.mx.Unlock()
		for _, sub := range targets {
			if !sub.cancelled.Load() {
				sub.listener(next.value)
			}
		}
		h.mx.Lock()
	}
	h.delivering = false
	h.mx.Unlock()
}

// --- Subject ---------------------------------------------------------------

// Subject is a stream clients emit values to.
type Subject[T any] struct {
	hub hub[T]
}

// NewSubject creates a subject without listeners.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe is part of interface Stream.
func (s *Subject[T]) Subscribe(l func(T)) func() {
	sub, _ := s.hub.add(l)
	var once sync.Once
	return func() {
		once.Do(func() { s.hub.remove(sub) })
	}
}

// Emit delivers v to all listeners of s.
func (s *Subject[T]) Emit(v T) {
	s.hub.emit(v)
}

var _ Stream[int] = &Subject[int]{}

// --- Operators -------------------------------------------------------------

// derived is a stream fed by an upstream stream. It is connected to its
// upstream while it has at least one listener.
type derived[T any] struct {
	hub      hub[T]
	conn     sync.Mutex
	connect  func(emit func(T)) (cancel func())
	upstream func()
	onAdd    func(*subscription[T]) // called for every new subscription
}

// Subscribe holds back deliveries until the subscription is complete,
// so listeners may subscribe to d again without blocking.
func (d *derived[T]) Subscribe(l func(T)) func() {
	d.hub.hold()
	d.conn.Lock()
	sub, first := d.hub.add(l)
	if d.onAdd != nil {
		d.onAdd(sub)
	}
	if first {
		tracer().Debugf("connecting derived stream to upstream")
		d.upstream = d.connect(d.hub.emit)
	}
	d.conn.Unlock()
	d.hub.release()
	var once sync.Once
	return func() {
		once.Do(func() {
			d.conn.Lock()
			defer d.conn.Unlock()
			if d.hub.remove(sub) && d.upstream != nil {
				tracer().Debugf("disconnecting derived stream from upstream")
				d.upstream()
				d.upstream = nil
			}
		})
	}
}

// Map creates a stream of f(v) for every value v of src.
func Map[S, T any](src Stream[S], f func(S) T) Stream[T] {
	return &derived[T]{
		connect: func(emit func(T)) func() {
			return src.Subscribe(func(v S) {
				emit(f(v))
			})
		},
	}
}

// Filter creates a stream of the values of src for which pred is true.
func Filter[T any](src Stream[T], pred func(T) bool) Stream[T] {
	return &derived[T]{
		connect: func(emit func(T)) func() {
			return src.Subscribe(func(v T) {
				if pred(v) {
					emit(v)
				}
			})
		},
	}
}

// StartWith creates a stream which remembers the latest value of src.
// Every new listener first receives the latest value, which is initial
// until src emits.
func StartWith[T any](src Stream[T], initial T) Stream[T] {
	var mx sync.Mutex
	latest := initial
	d := &derived[T]{}
	d.connect = func(emit func(T)) func() {
		return src.Subscribe(func(v T) {
			mx.Lock()
			latest = v
			mx.Unlock()
			emit(v)
		})
	}
	d.onAdd = func(sub *subscription[T]) {
		mx.Lock()
		v := latest
		mx.Unlock()
		d.hub.deliver(delivery[T]{value: v, to: sub})
	}
	return d
}

// Drain emits every value received from ch to subject, one at a time,
// until ch is closed or ctx is done. It returns ctx.Err() if ctx ended
// the draining, nil otherwise.
func Drain[T any](ctx context.Context, ch <-chan T, subject *Subject[T]) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return nil
			}
			subject.Emit(v)
		}
	}
}
