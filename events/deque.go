// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"

	"cogentcore.org/cad/view"
)

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Deque is an infinitely buffered FIFO queue of events, where events are
// added by input drivers and gesture synthesizers, and consumed by the
// per-frame tool dispatch loop. Non-unique events (mouse and touch motion,
// scrolling) are compressed on Send: when the most recently added, not yet
// consumed event has the same type, viewport, button, and modifiers, it is
// replaced by the incoming event rather than appended, so a burst of motion
// between two frames collapses to a single event carrying the final
// position. Scroll deltas are accumulated across the compressed run, and
// the Prev position of the surviving event spans it. The zero value is
// ready to use. Safe for concurrent use.
type Deque struct {
	mu   sync.Mutex
	back []Event // FIFO: back[0] is the oldest event
}

// Send adds an event to the end of the queue, compressing it with the
// current last event when eligible.
func (q *Deque) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n := len(q.back); n > 0 && !ev.IsUnique() {
		last := q.back[n-1]
		if compressible(last, ev) {
			eb := ev.AsBase()
			lb := last.AsBase()
			eb.Prev = lb.Prev
			eb.PrvTime = lb.PrvTime
			if sc, ok := ev.(*MouseScroll); ok {
				sc.Delta.SetAdd(last.(*MouseScroll).Delta)
			}
			q.back[n-1] = ev
			if TraceEventCompression {
				slog.Debug("compressed event", "type", ev.Type(), "pos", eb.Where)
			}
			return
		}
	}
	q.back = append(q.back, ev)
}

// compressible reports whether incoming can replace last in place:
// same type, same viewport, and same button and modifier state.
func compressible(last, incoming Event) bool {
	if last.Type() != incoming.Type() {
		return false
	}
	lb, ib := last.AsBase(), incoming.AsBase()
	return lb.Vp == ib.Vp && lb.Button == ib.Button && lb.Mods == ib.Mods &&
		lb.Sequence == ib.Sequence
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Deque) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.back) == 0 {
		return nil
	}
	ev := q.back[0]
	q.back[0] = nil
	q.back = q.back[1:]
	if len(q.back) == 0 {
		q.back = nil
	}
	return ev
}

// Drain removes and returns all queued events in FIFO order,
// under a single lock acquisition.
func (q *Deque) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.back
	q.back = nil
	return evs
}

// Len returns the number of queued events.
func (q *Deque) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.back)
}

// DropViewport removes all pending events for the given viewport,
// for when a viewport is removed while events are in flight.
func (q *Deque) DropViewport(vp view.Viewport) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.back[:0]
	for _, ev := range q.back {
		if ev.AsBase().Vp != vp {
			kept = append(kept, ev)
		}
	}
	for i := len(kept); i < len(q.back); i++ {
		q.back[i] = nil
	}
	q.back = kept
}
