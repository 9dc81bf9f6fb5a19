package types

import "strconv"

// Crate is the label printed inside a diagram slot, e.g. "Z" for "[Z]".
type Crate string

// String returns the string form of the crate label.
func (c Crate) String() string { return string(c) }

// Lane is a 1-based stack number as printed in the lane header.
type Lane uint

// String returns the decimal form of the lane number.
func (l Lane) String() string { return strconv.FormatUint(uint64(l), 10) }

// Fingerprint is a short digest of a stack arrangement presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
