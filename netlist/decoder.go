package netlist

import "github.com/golang/glog"

// FromNetlist decodes a little-endian netlist blob into a ready-to-Init
// EventSystem. Any short read, limit breach, or bad primitive record fails
// the whole load; the partially built system is discarded. Trailing bytes
// after the last cell record are tolerated and not an error.
func FromNetlist(data []byte) (*EventSystem, error) {
	r := newReader(data)

	rawPinInputs, err := readInputList(r, "pin", MaxPinInputs)
	if err != nil {
		return nil, err
	}
	pinInputs := make([]pinInput, len(rawPinInputs))
	for i, raw := range rawPinInputs {
		pinInputs[i] = pinInput{pin: raw.id, connections: raw.connections}
	}

	rawSwInputs, err := readInputList(r, "software", MaxSoftwareInputs)
	if err != nil {
		return nil, err
	}
	swInputs := make([]softwareInput, len(rawSwInputs))
	for i, raw := range rawSwInputs {
		swInputs[i] = softwareInput{addr: raw.id, connections: raw.connections}
	}

	nCells, decErr := r.readU32()
	if decErr != nil {
		glog.Errorf("netlist: failed reading cell count: %v", decErr)
		return nil, decErr
	}
	if nCells > MaxCells {
		decErr := errCountTooLarge("n_cells", int(nCells), MaxCells)
		glog.Errorf("netlist: %v", decErr)
		return nil, decErr
	}
	glog.V(1).Infof("netlist: cells=%d", nCells)

	cells := make([]Primitive, 0, nCells)
	totalOutputConnections := 0
	for i := uint32(0); i < nCells; i++ {
		descriptor, decErr := readCellRecord(r)
		if decErr != nil {
			glog.Errorf("netlist: cell %d: %v", i, decErr)
			return nil, decErr
		}
		cell, buildErr := buildPrimitive(descriptor)
		if buildErr != nil {
			decErr := errBadPrimitive(buildErr.Error())
			glog.Errorf("netlist: cell %d: %v", i, decErr)
			return nil, decErr
		}
		glog.V(1).Infof("netlist: cell %d built as typecode=%d", i, descriptor.Typecode)
		cells = append(cells, cell)
		for _, out := range descriptor.OutPorts {
			totalOutputConnections += len(out)
		}
	}
	for _, p := range pinInputs {
		totalOutputConnections += len(p.connections)
	}
	for _, s := range swInputs {
		totalOutputConnections += len(s.connections)
	}

	return &EventSystem{
		pinInputs:      pinInputs,
		softwareInputs: swInputs,
		cells:          cells,
		workCap:        totalOutputConnections,
	}, nil
}

// rawInputRecord is the id + connection list shared by pin and software
// input records; only the interpretation of id (pin number vs. address)
// differs between the two.
type rawInputRecord struct {
	id          uint16
	connections []Connection
}

// readInputList reads n input records (pin or software inputs share the
// same wire shape: id, a discarded name, then a connection list),
// enforcing max as the ceiling on the preceding count field.
func readInputList(r *reader, kind string, max int) ([]rawInputRecord, *DecodingError) {
	n, err := r.readU16()
	if err != nil {
		glog.Errorf("netlist: failed reading %s input count: %v", kind, err)
		return nil, err
	}
	if int(n) > max {
		decErr := errCountTooLarge("n_"+kind+"_input", int(n), max)
		glog.Errorf("netlist: %v", decErr)
		return nil, decErr
	}
	glog.V(1).Infof("netlist: %s inputs=%d", kind, n)

	result := make([]rawInputRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		id, err := r.readU16()
		if err != nil {
			return nil, err
		}
		nameSize, err := r.readU16()
		if err != nil {
			return nil, err
		}
		if err := r.skip(int(nameSize)); err != nil {
			return nil, err
		}
		nConns, err := r.readU16()
		if err != nil {
			return nil, err
		}
		if int(nConns) > MaxConnections {
			return nil, errCountTooLarge("n_connections", int(nConns), MaxConnections)
		}
		conns, err := readConnections(r, int(nConns))
		if err != nil {
			return nil, err
		}
		result = append(result, rawInputRecord{id: id, connections: conns})
	}
	return result, nil
}

func readConnections(r *reader, n int) ([]Connection, *DecodingError) {
	conns := make([]Connection, 0, n)
	for i := 0; i < n; i++ {
		cellID, err := r.readU16()
		if err != nil {
			return nil, err
		}
		port, err := r.readU16()
		if err != nil {
			return nil, err
		}
		conns = append(conns, Connection{CellID: cellID, Port: port})
	}
	return conns, nil
}

func readCellRecord(r *reader) (PrimitiveDescriptor, *DecodingError) {
	typecode, err := r.readU16()
	if err != nil {
		return PrimitiveDescriptor{}, err
	}

	nParams, err := r.readU16()
	if err != nil {
		return PrimitiveDescriptor{}, err
	}
	if int(nParams) > MaxParameters {
		return PrimitiveDescriptor{}, errCountTooLarge("n_params", int(nParams), MaxParameters)
	}
	params := make([]int32, 0, nParams)
	for i := uint16(0); i < nParams; i++ {
		p, err := r.readI32()
		if err != nil {
			return PrimitiveDescriptor{}, err
		}
		params = append(params, p)
	}

	nOutputs, err := r.readU16()
	if err != nil {
		return PrimitiveDescriptor{}, err
	}
	if int(nOutputs) > MaxOutputs {
		return PrimitiveDescriptor{}, errCountTooLarge("n_outputs", int(nOutputs), MaxOutputs)
	}
	outPorts := make([][]Connection, 0, nOutputs)
	for i := uint16(0); i < nOutputs; i++ {
		nConns, err := r.readU16()
		if err != nil {
			return PrimitiveDescriptor{}, err
		}
		if int(nConns) > MaxConnections {
			return PrimitiveDescriptor{}, errCountTooLarge("n_connections", int(nConns), MaxConnections)
		}
		conns, err := readConnections(r, int(nConns))
		if err != nil {
			return PrimitiveDescriptor{}, err
		}
		outPorts = append(outPorts, conns)
	}

	return PrimitiveDescriptor{Typecode: typecode, OutPorts: outPorts, Params: params}, nil
}
