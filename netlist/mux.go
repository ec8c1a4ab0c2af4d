package netlist

// mux selects one of n data inputs by a separate select port. Data ports
// are [0, n); port n is the select port; ports beyond n are ignored. A
// write to either range re-fires the currently selected input if select is
// in range.
type mux struct {
	noInit

	inputs    []int32
	selectIdx int
	output    []Connection
}

func newMux(d PrimitiveDescriptor) (Primitive, error) {
	if len(d.Params) != 1 {
		return nil, errWrongParamCount("Mux", "1", len(d.Params))
	}
	if len(d.OutPorts) != 1 {
		return nil, errWrongPortCount("Mux", "1", len(d.OutPorts))
	}
	n := int(d.Params[0])
	if n < 0 {
		n = 0
	}
	return &mux{inputs: make([]int32, n), output: d.OutPorts[0]}, nil
}

func (m *mux) Dispatch(port uint16, event Event, out emit) {
	n := len(m.inputs)
	switch {
	case int(port) > n:
		return
	case int(port) == n:
		m.selectIdx = int(event.Value)
	default:
		m.inputs[port] = event.Value
	}

	if m.selectIdx >= 0 && m.selectIdx < n {
		fired := Event{Value: m.inputs[m.selectIdx]}
		for _, c := range m.output {
			out(c, fired)
		}
	}
}
