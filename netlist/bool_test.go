package netlist

import "testing"

func newTestBool() *boolCell {
	cell, err := newBool(PrimitiveDescriptor{OutPorts: [][]Connection{{{CellID: 0xFFFF, Port: 0}}}})
	if err != nil {
		panic(err)
	}
	return cell.(*boolCell)
}

func TestBoolPorts(t *testing.T) {
	tests := []struct {
		port  uint16
		input int32
		want  int32
	}{
		{0, 0, 1},
		{0, 77, 1},
		{1, 0, 0},
		{1, 77, 0},
		{2, 55, 55},
	}
	for _, tt := range tests {
		b := newTestBool()
		got := collect(func(out emit) { b.Dispatch(tt.port, Event{Value: tt.input}, out) })
		if len(got) != 1 || got[0].Value != tt.want {
			t.Errorf("port=%d input=%d: got %v, want [{%d}]", tt.port, tt.input, got, tt.want)
		}
	}
}

func TestBoolIgnoresOtherPorts(t *testing.T) {
	b := newTestBool()
	got := collect(func(out emit) { b.Dispatch(3, Event{Value: 1}, out) })
	if len(got) != 0 {
		t.Fatalf("dispatch on port 3 emitted %v, want none", got)
	}
}

func TestBoolIsStatelessAcrossRepeatedCalls(t *testing.T) {
	b := newTestBool()
	first := collect(func(out emit) { b.Dispatch(2, Event{Value: 9}, out) })
	second := collect(func(out emit) { b.Dispatch(2, Event{Value: 9}, out) })
	if first[0].Value != second[0].Value {
		t.Fatalf("repeated identical dispatch produced %v then %v", first, second)
	}
}
