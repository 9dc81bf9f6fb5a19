package layout

import (
	"cratemover/internal/domain"
)

// slotWidth is the number of bytes a slot occupies before its optional
// trailing space.
const slotWidth = 3

// slot is a crate found at a 0-based diagram column.
type slot struct {
	column int
	crate  domain.Crate
}

// scanRow reads slots from the start of line. A slot is "[X]" or three spaces,
// each optionally followed by one more space, and every slot is one column.
// Scanning stops at the first thing that is not a slot; the slots read up to
// there are kept. It reports false if line is not a diagram row, that is if no
// slot holds a crate.
func scanRow(line string) ([]slot, bool) {
	var slots []slot
	for pos, column := 0, 0; pos+slotWidth <= len(line); column++ {
		chunk := line[pos : pos+slotWidth]
		switch {
		case isCrate(chunk):
			slots = append(slots, slot{column: column, crate: domain.Crate(chunk[1:2])})
		case chunk == "   ":
		default:
			return slots, len(slots) > 0
		}
		pos += slotWidth
		if pos < len(line) && line[pos] == ' ' {
			pos++
		}
	}
	return slots, len(slots) > 0
}

// isCrate matches "[X]" where X is an ASCII word character.
func isCrate(chunk string) bool {
	return chunk[0] == '[' && chunk[2] == ']' && isWordByte(chunk[1])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
