package netlist

// demux routes an incoming data event (port 0) to one of several output
// connection lists, chosen by the last value written to the select port
// (port 1). Ports beyond 1 are ignored, and a data event while select is
// out of range is dropped.
type demux struct {
	noInit

	selected int32
	outputs [][]Connection
}

func newDemux(d PrimitiveDescriptor) (Primitive, error) {
	if len(d.Params) != 0 {
		return nil, errWrongParamCount("Demux", "0", len(d.Params))
	}
	if len(d.OutPorts) < 1 {
		return nil, errWrongPortCount("Demux", ">=1", len(d.OutPorts))
	}
	return &demux{outputs: d.OutPorts}, nil
}

func (d *demux) Dispatch(port uint16, event Event, out emit) {
	switch port {
	case 0:
		if d.selected >= 0 && int(d.selected) < len(d.outputs) {
			for _, c := range d.outputs[d.selected] {
				out(c, event)
			}
		}
	case 1:
		d.selected = event.Value
	}
}
