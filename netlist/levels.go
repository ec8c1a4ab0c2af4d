package netlist

// levels holds an ordered list of i32 values and a cursor into it. Port 0
// advances the cursor, port 1 retreats it, both modulo len(values); only
// nonzero ("bang") events trigger a move. Every successful move emits the
// newly selected value to output.
type levels struct {
	values []int32
	cursor int
	output []Connection
}

func newLevels(d PrimitiveDescriptor) (Primitive, error) {
	if len(d.OutPorts) != 1 {
		return nil, errWrongPortCount("Levels", "1", len(d.OutPorts))
	}
	return &levels{values: d.Params, output: d.OutPorts[0]}, nil
}

// Init emits the first level, if any. An empty level list emits nothing.
func (l *levels) Init(out emit) {
	if len(l.values) == 0 {
		return
	}
	l.emit(out)
}

func (l *levels) Dispatch(port uint16, event Event, out emit) {
	if event.Value == 0 {
		return
	}
	n := len(l.values)
	if n == 0 {
		return
	}
	switch port {
	case 0: // increment
		l.cursor = (l.cursor + 1) % n
	case 1: // decrement, wrapping without underflow
		l.cursor = (l.cursor + n - 1) % n
	default:
		return
	}
	l.emit(out)
}

func (l *levels) emit(out emit) {
	event := Event{Value: l.values[l.cursor]}
	for _, c := range l.output {
		out(c, event)
	}
}
