package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/valvenet/core"
)

// ErrNoTunnels is returned by Format for a valve without tunnels, which the
// text form cannot express.
var ErrNoTunnels = errors.New("input: valve has no tunnels")

// Format writes n in the text form read by Parse, one valve per line in
// declaration order, using the singular wording for a single tunnel.
// The start valve is not part of the text form.
func Format(w io.Writer, n *core.Network) error {
	bw := bufio.NewWriter(w)
	for _, v := range n.Valves() {
		if len(v.Tunnels) == 0 {
			return fmt.Errorf("%w: %q", ErrNoTunnels, v.ID)
		}
		tail := "tunnels lead to valves"
		if len(v.Tunnels) == 1 {
			tail = "tunnel leads to valve"
		}
		if _, err := fmt.Fprintf(bw, "Valve %s has flow rate=%d; %s %s\n",
			v.ID, v.Rate, tail, strings.Join(v.Tunnels, ", ")); err != nil {
			return fmt.Errorf("input: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("input: write: %w", err)
	}

	return nil
}
