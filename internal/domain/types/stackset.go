package types

// StackSet is the ordered collection of stacks addressed by lane number.
// Lanes are contiguous and start at 1.
type StackSet struct {
	stacks []Stack
}

// NewStackSet returns a set whose lanes hold the given stacks in order.
func NewStackSet(stacks ...Stack) *StackSet {
	set := &StackSet{stacks: make([]Stack, len(stacks))}
	for i := range stacks {
		set.stacks[i] = NewStack(stacks[i].crates...)
	}
	return set
}

// Len reports the number of lanes.
func (s *StackSet) Len() int { return len(s.stacks) }

// Lane returns the stack for a 1-based lane number.
func (s *StackSet) Lane(l Lane) (*Stack, bool) {
	if l == 0 || uint64(l) > uint64(len(s.stacks)) {
		return nil, false
	}
	return &s.stacks[l-1], true
}

// Column returns the stack at 0-based diagram column col, appending empty
// stacks until it exists. The returned pointer is only valid until the next
// call to Column.
func (s *StackSet) Column(col int) *Stack {
	for len(s.stacks) <= col {
		s.stacks = append(s.stacks, Stack{})
	}
	return &s.stacks[col]
}

// Total reports the number of crates across all lanes.
func (s *StackSet) Total() int {
	n := 0
	for i := range s.stacks {
		n += s.stacks[i].Len()
	}
	return n
}

// Snapshot returns the crates of every lane, bottom to top, in lane order.
func (s *StackSet) Snapshot() [][]Crate {
	out := make([][]Crate, len(s.stacks))
	for i := range s.stacks {
		out[i] = s.stacks[i].Crates()
	}
	return out
}

// Clone returns a deep copy of the set.
func (s *StackSet) Clone() *StackSet {
	return NewStackSet(s.stacks...)
}
