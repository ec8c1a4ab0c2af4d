package netlist

import "github.com/golang/glog"

// Primitive is a stateful cell. Init is called once per cell at system
// initialisation and may emit startup events. Dispatch is invoked once per
// delivered event; it mutates internal state and may emit zero or more
// events through out. Dispatch is never invoked recursively on the same cell
// from within its own out callback — the engine queues outputs instead of
// recursing (see EventSystem's drain loop). A Primitive must not retain
// out beyond the call it was handed in.
type Primitive interface {
	Init(out emit)
	Dispatch(port uint16, event Event, out emit)
}

// noInit is embedded by primitives that have nothing to do on startup.
type noInit struct{}

func (noInit) Init(out emit) {}

// PrimitiveDescriptor is what the decoder hands to a PrimitiveFactory after
// reading one cell record.
type PrimitiveDescriptor struct {
	Typecode uint16
	OutPorts [][]Connection
	Params   []int32
}

// PrimitiveFactory validates a descriptor's port/param arity for one
// typecode and constructs the corresponding cell.
type PrimitiveFactory func(d PrimitiveDescriptor) (Primitive, error)

const (
	typecodeLevels uint16 = 0
	typecodeMux    uint16 = 1
	typecodeDemux  uint16 = 2
	typecodeBool   uint16 = 3

	// firstOpenTypecode is the lowest typecode an embedder may register a
	// custom Primitive under. Typecodes below this are reserved for the
	// four built-in cells and cannot be overridden.
	firstOpenTypecode uint16 = 4
)

var registry = map[uint16]PrimitiveFactory{}

func init() {
	registry[typecodeLevels] = newLevels
	registry[typecodeMux] = newMux
	registry[typecodeDemux] = newDemux
	registry[typecodeBool] = newBool
}

// RegisterPrimitive adds a factory for a custom cell type. It panics if
// typecode names one of the four built-in types (0-3); embedders get
// typecodes 4 and up. Registration is meant to happen at package init time,
// before any FromNetlist call — there is no dynamic reconfiguration of a
// running EventSystem.
func RegisterPrimitive(typecode uint16, factory PrimitiveFactory) {
	if typecode < firstOpenTypecode {
		panic("netlist: typecodes below 4 are reserved for built-in primitives")
	}
	registry[typecode] = factory
}

func buildPrimitive(d PrimitiveDescriptor) (Primitive, error) {
	factory, ok := registry[d.Typecode]
	if !ok {
		return nil, errBadType(d.Typecode)
	}
	glog.V(1).Infof("netlist: building typecode=%d params=%v outputs=%d", d.Typecode, d.Params, len(d.OutPorts))
	return factory(d)
}
