package netlist

import "encoding/binary"

// reader is a positional cursor over a borrowed byte slice. Every read is
// bounds-checked and advances the cursor by the exact width on success; no
// alignment is assumed.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) readU16() (uint16, *DecodingError) {
	if r.remaining() < 2 {
		return 0, errInsufficientBytes("u16")
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) readU32() (uint32, *DecodingError) {
	if r.remaining() < 4 {
		return 0, errInsufficientBytes("u32")
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) readI32() (int32, *DecodingError) {
	if r.remaining() < 4 {
		return 0, errInsufficientBytes("i32")
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

func (r *reader) skip(n int) *DecodingError {
	if r.remaining() < n {
		return errInsufficientBytes("skip")
	}
	r.pos += n
	return nil
}
