package matrix

import "fmt"

// Len returns the matrix order (interesting valves, start included).
func (d *Distances) Len() int { return len(d.ids) }

// Valves returns the number of value-bearing valves. Their indices are
// [0, Valves()).
func (d *Distances) Valves() int { return d.valves }

// ValveIDs returns the IDs of the value-bearing valves in index order.
func (d *Distances) ValveIDs() []string {
	return append([]string(nil), d.ids[:d.valves]...)
}

// Start returns the index of the start valve.
func (d *Distances) Start() int { return d.start }

// Budget returns the depth cap used during Build; 0 means uncapped.
func (d *Distances) Budget() int { return d.budget }

// Visits returns how many valves all walks of Build visited together.
func (d *Distances) Visits() int { return d.visits }

// ID returns the valve ID at index i.
func (d *Distances) ID(i int) (string, error) {
	if i < 0 || i >= len(d.ids) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}

	return d.ids[i], nil
}

// Index returns the matrix index of the valve id.
func (d *Distances) Index(id string) (int, error) {
	i, ok := d.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, id)
	}

	return i, nil
}

// Rate returns the flow rate of the valve at index i.
// It panics when i is out of range; it sits on the search hot path.
func (d *Distances) Rate(i int) int { return d.rates[i] }

// At returns the travel time from i to j, or Unreachable.
// It panics when i or j is out of range; it sits on the search hot path.
func (d *Distances) At(i, j int) int { return d.data[i*len(d.ids)+j] }

// Lookup returns the travel time between two valves by ID.
func (d *Distances) Lookup(from, to string) (int, error) {
	i, err := d.Index(from)
	if err != nil {
		return 0, err
	}
	j, err := d.Index(to)
	if err != nil {
		return 0, err
	}

	return d.At(i, j), nil
}

// Symmetric reports whether At(i, j) == At(j, i) for every pair.
// On networks with one-way tunnels this may legitimately be false.
func (d *Distances) Symmetric() bool {
	n := len(d.ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.At(i, j) != d.At(j, i) {
				return false
			}
		}
	}

	return true
}
