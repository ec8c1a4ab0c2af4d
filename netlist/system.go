package netlist

import "github.com/golang/glog"

// workItem is one pending (destination, event) pair on the engine's LIFO
// work list.
type workItem struct {
	conn  Connection
	event Event
}

// workList is a fixed-capacity LIFO stack, pre-sized once at decode time so
// that draining a stimulus never grows the heap. Pushing past capacity is
// an engine-fatal condition (spec's accepted limitation for a netlist with
// an unbounded combinational loop) and panics rather than silently growing.
type workList struct {
	items []workItem
}

func newWorkList(capacity int) *workList {
	return &workList{items: make([]workItem, 0, capacity)}
}

func (w *workList) push(conn Connection, event Event) {
	if len(w.items) == cap(w.items) {
		panic("netlist: work list overflow; netlist likely contains an unbounded combinational loop")
	}
	w.items = append(w.items, workItem{conn: conn, event: event})
}

func (w *workList) pop() (workItem, bool) {
	n := len(w.items)
	if n == 0 {
		return workItem{}, false
	}
	item := w.items[n-1]
	w.items = w.items[:n-1]
	return item, true
}

func (w *workList) grow(additional int) {
	grown := make([]workItem, len(w.items), cap(w.items)+additional)
	copy(grown, w.items)
	w.items = grown
}

// EventSystem owns the pin inputs, software inputs and cells decoded from a
// netlist. Cell identity is its index into cells; no cell may be added or
// removed after construction. EventSystem is not safe for concurrent use
// from multiple goroutines.
type EventSystem struct {
	pinInputs      []pinInput
	softwareInputs []softwareInput
	cells          []Primitive

	workCap int
	work    *workList
}

// GrowWorkList raises the pre-sized work list capacity by additional slots.
// Use it if a netlist's fan-out pattern is known to exceed the capacity
// FromNetlist computed (sum of all declared output-connection counts).
func (s *EventSystem) GrowWorkList(additional int) {
	s.ensureWorkList()
	s.work.grow(additional)
}

func (s *EventSystem) ensureWorkList() {
	if s.work == nil {
		s.work = newWorkList(s.workCap)
	}
}

// Init invokes Init on every cell in declaration order, then drains any
// events that triggered. Call it once, before the first stimulus, to honor
// startup emissions (e.g. Levels emitting its first value).
func (s *EventSystem) Init(sink Sink) {
	s.ensureWorkList()
	for i := range s.cells {
		s.cells[i].Init(func(conn Connection, event Event) {
			s.work.push(conn, event)
		})
	}
	s.drain(sink)
}

// ProcessHWEvent dispatches value to the pin input matching pin, if any,
// draining its full cascade before returning. An unknown pin is a silent
// no-op.
func (s *EventSystem) ProcessHWEvent(pin uint16, value int32, sink Sink) {
	s.ensureWorkList()
	for i := range s.pinInputs {
		if s.pinInputs[i].pin == pin {
			s.pinInputs[i].fanOut(value, func(conn Connection, event Event) {
				s.work.push(conn, event)
			})
			s.drain(sink)
			return
		}
	}
	glog.V(1).Infof("netlist: no pin input for pin=%d", pin)
}

// ProcessSWEvent dispatches value to the software input matching addr, if
// any, draining its full cascade before returning. An unknown address is a
// silent no-op.
func (s *EventSystem) ProcessSWEvent(addr uint16, value int32, sink Sink) {
	s.ensureWorkList()
	for i := range s.softwareInputs {
		if s.softwareInputs[i].addr == addr {
			s.softwareInputs[i].fanOut(value, func(conn Connection, event Event) {
				s.work.push(conn, event)
			})
			s.drain(sink)
			return
		}
	}
	glog.V(1).Infof("netlist: no software input for addr=%d", addr)
}

// drain pops the work list until empty, delivering events whose connection
// targets the external sentinel to sink and dispatching everything else to
// the indexed cell. Order is LIFO: the most recently enqueued event is the
// next dispatched, including the natural fan-out order within one
// Dispatch/Init call (pushed in iteration order, therefore popped in
// reverse). Out-of-range cell indices are dropped, not an error.
func (s *EventSystem) drain(sink Sink) {
	emitFn := func(conn Connection, event Event) {
		s.work.push(conn, event)
	}
	for {
		item, ok := s.work.pop()
		if !ok {
			return
		}
		if item.conn.CellID == externalSink {
			sink(item.conn.Port, item.event)
			continue
		}
		if int(item.conn.CellID) >= len(s.cells) {
			glog.V(1).Infof("netlist: dropping event for out-of-range cell_id=%d", item.conn.CellID)
			continue
		}
		s.cells[item.conn.CellID].Dispatch(item.conn.Port, item.event, emitFn)
	}
}
