// Package input reads valve networks from their line-oriented text form:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// One valve per line; blank lines are skipped.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvenet/core"
)

// DefaultStart is the valve every walk starts from unless told otherwise.
const DefaultStart = "AA"

// ErrSyntax is wrapped by every line that does not match the valve format.
var ErrSyntax = errors.New("input: syntax error")

var lineRE = regexp.MustCompile(
	`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, *\w+)*)$`,
)

// Parse reads valves from r and builds a Network starting at start.
// Structural defects (dangling tunnels, missing start) are reported by
// core.NewNetwork and wrap core.ErrMalformedGraph.
func Parse(r io.Reader, start string) (*core.Network, error) {
	var (
		valves []core.Valve
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, lineNo, line)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: flow rate: %v", ErrSyntax, lineNo, err)
		}
		tunnels := strings.Split(m[3], ",")
		for i := range tunnels {
			tunnels[i] = strings.TrimSpace(tunnels[i])
		}
		valves = append(valves, core.Valve{ID: m[1], Rate: rate, Tunnels: tunnels})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return core.NewNetwork(valves, start)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path, start string) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, start)
}
