// Command switchboardsim loads a netlist from disk and replays a stimulus
// script against it, printing every event the engine delivers to its
// external sink. It is the offline harness an embedded team uses to
// exercise a netlist before flashing it onto real hardware; it depends on
// the netlist package, never the reverse.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"regexp"
	"strconv"

	"github.com/golang/glog"
	"github.com/tebeka/atexit"

	"github.com/mcbridejc/switchboard/netlist"
)

var (
	netlistPath  = flag.String("netlist", "", "path to a binary netlist file (required)")
	stimulusPath = flag.String("stimulus", "", "path to a stimulus script; stdin if unset")
)

// stimulusRe matches one non-blank stimulus line: a kind ("hw" or "sw"), a
// pin number or software address, and a value. Leading/trailing space and
// blank lines are tolerated; anything else is a parse error.
var stimulusRe = regexp.MustCompile(`^\s*(hw|sw)\s+(\d+)\s+(-?\d+)\s*$`)

// stimulusEvent is one parsed line of a stimulus script.
type stimulusEvent struct {
	software bool
	id       uint16
	value    int32
}

// parseStimulusLine parses a single stimulus script line of the form
// "hw <pin> <value>" or "sw <addr> <value>". Blank lines and lines whose
// first non-space character is '#' parse as (zero value, false, nil),
// signaling "skip"; any other malformed line is an error.
func parseStimulusLine(line string) (stimulusEvent, bool, error) {
	trimmed := line
	for len(trimmed) > 0 && (trimmed[0] == ' ' || trimmed[0] == '\t') {
		trimmed = trimmed[1:]
	}
	if trimmed == "" || trimmed[0] == '#' {
		return stimulusEvent{}, false, nil
	}
	m := stimulusRe.FindStringSubmatch(line)
	if m == nil {
		return stimulusEvent{}, false, fmt.Errorf("malformed stimulus line %q", line)
	}
	id, err := strconv.ParseUint(m[2], 10, 16)
	if err != nil {
		return stimulusEvent{}, false, fmt.Errorf("stimulus id out of range: %q", line)
	}
	value, err := strconv.ParseInt(m[3], 10, 32)
	if err != nil {
		return stimulusEvent{}, false, fmt.Errorf("stimulus value out of range: %q", line)
	}
	return stimulusEvent{software: m[1] == "sw", id: uint16(id), value: int32(value)}, true, nil
}

func main() {
	flag.Parse()
	defer atexit.Exit(0)
	atexit.Register(glog.Flush)

	if *netlistPath == "" {
		glog.Errorf("switchboardsim: -netlist is required")
		fmt.Fprintln(os.Stderr, "usage: switchboardsim -netlist PATH [-stimulus PATH]")
		atexit.Exit(2)
		return
	}

	data, err := ioutil.ReadFile(*netlistPath)
	if err != nil {
		glog.Errorf("switchboardsim: reading netlist: %v", err)
		atexit.Exit(1)
		return
	}

	sys, err := netlist.FromNetlist(data)
	if err != nil {
		glog.Errorf("switchboardsim: decoding netlist: %v", err)
		atexit.Exit(1)
		return
	}
	glog.V(1).Infof("switchboardsim: loaded %s", *netlistPath)

	sink := func(port uint16, event netlist.Event) {
		fmt.Printf("out[%d] = %d\n", port, event.Value)
	}
	sys.Init(sink)

	in := os.Stdin
	if *stimulusPath != "" {
		f, err := os.Open(*stimulusPath)
		if err != nil {
			glog.Errorf("switchboardsim: opening stimulus script: %v", err)
			atexit.Exit(1)
			return
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		ev, ok, err := parseStimulusLine(scanner.Text())
		if err != nil {
			glog.Errorf("switchboardsim: stimulus line %d: %v", lineNo, err)
			atexit.Exit(1)
			return
		}
		if !ok {
			continue
		}
		if ev.software {
			sys.ProcessSWEvent(ev.id, ev.value, sink)
		} else {
			sys.ProcessHWEvent(ev.id, ev.value, sink)
		}
	}
	if err := scanner.Err(); err != nil {
		glog.Errorf("switchboardsim: reading stimulus script: %v", err)
		atexit.Exit(1)
	}
}
