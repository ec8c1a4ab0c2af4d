package netlist

// pinInput and softwareInput are degenerate primitives addressed by a
// physical pin id or logical software address rather than a cells[] index.
// Their only action on stimulus is to fan the incoming event out to every
// wired connection; they carry no other state and are found by linear
// search on id, not indexed.

type pinInput struct {
	pin         uint16
	connections []Connection
}

type softwareInput struct {
	addr        uint16
	connections []Connection
}

func (p *pinInput) fanOut(value int32, out emit) {
	event := Event{Value: value}
	for _, c := range p.connections {
		out(c, event)
	}
}

func (s *softwareInput) fanOut(value int32, out emit) {
	event := Event{Value: value}
	for _, c := range s.connections {
		out(c, event)
	}
}
