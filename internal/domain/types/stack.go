package types

// Stack holds crates bottom first: index 0 is the floor, the last element is
// the top.
type Stack struct {
	crates []Crate
}

// NewStack returns a stack holding crates, listed bottom to top.
func NewStack(crates ...Crate) Stack {
	return Stack{crates: append([]Crate(nil), crates...)}
}

// Len reports the number of crates on the stack.
func (s *Stack) Len() int { return len(s.crates) }

// Top returns the topmost crate, or false when the stack is empty.
func (s *Stack) Top() (Crate, bool) {
	if len(s.crates) == 0 {
		return "", false
	}
	return s.crates[len(s.crates)-1], true
}

// Crates returns a copy of the stack contents, bottom to top.
func (s *Stack) Crates() []Crate {
	return append([]Crate(nil), s.crates...)
}

// Push places c on top of the stack.
func (s *Stack) Push(c Crate) {
	s.crates = append(s.crates, c)
}

// Slide inserts c underneath every crate already on the stack. Diagram rows
// are read top-down, so each new row lands below the previous one.
func (s *Stack) Slide(c Crate) {
	s.crates = append(s.crates, "")
	copy(s.crates[1:], s.crates)
	s.crates[0] = c
}

// Lift removes the top n crates and returns them bottom to top. It panics if
// n exceeds Len; callers check capacity first.
func (s *Stack) Lift(n int) []Crate {
	cut := len(s.crates) - n
	block := append([]Crate(nil), s.crates[cut:]...)
	s.crates = s.crates[:cut]
	return block
}
