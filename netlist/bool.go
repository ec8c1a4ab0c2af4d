package netlist

// boolCell is stateless: port 0 fires a 1 (SET), port 1 fires a 0 (CLEAR),
// port 2 passes the incoming value through verbatim. Other ports are
// ignored.
type boolCell struct {
	noInit

	output []Connection
}

func newBool(d PrimitiveDescriptor) (Primitive, error) {
	if len(d.Params) != 0 {
		return nil, errWrongParamCount("Bool", "0", len(d.Params))
	}
	if len(d.OutPorts) != 1 {
		return nil, errWrongPortCount("Bool", "1", len(d.OutPorts))
	}
	return &boolCell{output: d.OutPorts[0]}, nil
}

func (b *boolCell) Dispatch(port uint16, event Event, out emit) {
	var value int32
	switch port {
	case 0:
		value = 1
	case 1:
		value = 0
	case 2:
		value = event.Value
	default:
		return
	}
	fired := Event{Value: value}
	for _, c := range b.output {
		out(c, fired)
	}
}
