package netlist_test

import (
	"bytes"
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mcbridejc/switchboard/netlist"
)

// propertyBuilder is a minimal netlist byte assembler for the property
// suite; it deliberately duplicates the package-internal test builder
// rather than reaching into netlist's internals, since these specs only
// exercise the public FromNetlist/EventSystem surface.
type propertyBuilder struct {
	buf bytes.Buffer
}

func (b *propertyBuilder) u16(v uint16) *propertyBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *propertyBuilder) u32(v uint32) *propertyBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *propertyBuilder) i32(v int32) *propertyBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *propertyBuilder) bytes() []byte {
	return b.buf.Bytes()
}

func emptyHeader() *propertyBuilder {
	b := &propertyBuilder{}
	b.u16(0) // n_pin_input
	b.u16(0) // n_sw_input
	return b
}

var _ = Describe("bounds enforcement", func() {
	DescribeTable("a count one over its documented ceiling is rejected",
		func(build func(limit int) []byte, limit int) {
			_, err := netlist.FromNetlist(build(limit))
			Expect(err).To(HaveOccurred())
			Expect(err.(*netlist.DecodingError).Kind).To(Equal(netlist.CountTooLarge))
		},
		Entry("pin inputs", func(limit int) []byte {
			b := &propertyBuilder{}
			b.u16(uint16(limit + 1))
			return b.bytes()
		}, netlist.MaxPinInputs),
		Entry("software inputs", func(limit int) []byte {
			b := &propertyBuilder{}
			b.u16(0)
			b.u16(uint16(limit + 1))
			return b.bytes()
		}, netlist.MaxSoftwareInputs),
		Entry("cells", func(limit int) []byte {
			b := emptyHeader()
			b.u32(uint32(limit + 1))
			return b.bytes()
		}, netlist.MaxCells),
		Entry("params", func(limit int) []byte {
			b := emptyHeader()
			b.u32(1)
			b.u16(3) // Bool typecode, rejected on param count before arity check ever runs
			b.u16(uint16(limit + 1))
			return b.bytes()
		}, netlist.MaxParameters),
	)
})

var _ = Describe("unknown typecode", func() {
	It("is reported as BadPrimitive", func() {
		b := emptyHeader()
		b.u32(1)
		b.u16(0x1234)
		b.u16(0)
		b.u16(0)
		_, err := netlist.FromNetlist(b.bytes())
		Expect(err).To(HaveOccurred())
		Expect(err.(*netlist.DecodingError).Kind).To(Equal(netlist.BadPrimitive))
	})
})

var _ = Describe("Mux arity", func() {
	DescribeTable("a wrong param count is rejected as BadPrimitive",
		func(nParams uint16) {
			b := emptyHeader()
			b.u32(1)
			b.u16(1) // Mux typecode
			b.u16(nParams)
			for i := uint16(0); i < nParams; i++ {
				b.i32(1)
			}
			b.u16(1) // n_outputs
			b.u16(0) // n_connections
			_, err := netlist.FromNetlist(b.bytes())
			Expect(err).To(HaveOccurred())
			Expect(err.(*netlist.DecodingError).Kind).To(Equal(netlist.BadPrimitive))
		},
		Entry("zero params", uint16(0)),
		Entry("two params", uint16(2)),
	)
})

var _ = Describe("LIFO ordering", func() {
	It("delivers the later-listed connection first", func() {
		// One pin input (id 0) fans out to a single Bool cell on port 0,
		// which in turn has two output connections both wired straight to
		// the external sink: port 10 listed first, port 20 listed second.
		b := &propertyBuilder{}
		b.u16(1) // n_pin_input
		b.u16(0) // pin id 0
		b.u16(0) // name_size
		b.u16(1) // n_connections
		b.u16(0) // cell_id 0 (the Bool cell)
		b.u16(0) // port 0 (SET)
		b.u16(0) // n_sw_input

		b.u32(1) // n_cells
		b.u16(3) // Bool
		b.u16(0) // n_params
		b.u16(1) // n_outputs
		b.u16(2) // n_connections on that output
		b.u16(0xFFFF)
		b.u16(10)
		b.u16(0xFFFF)
		b.u16(20)

		sys, err := netlist.FromNetlist(b.bytes())
		Expect(err).NotTo(HaveOccurred())

		var order []uint16
		sys.Init(func(port uint16, event netlist.Event) {})
		sys.ProcessHWEvent(0, 1, func(port uint16, event netlist.Event) {
			order = append(order, port)
		})

		Expect(order).To(Equal([]uint16{20, 10}))
	})
})
