package layout

import (
	"github.com/pkg/errors"

	"cratemover/internal/domain"
)

// Parse reads the diagram, lane header and separator from the top of lines.
// It returns the stacks, lane 1 first, and the lines following the separator.
func Parse(lines []string) (*domain.StackSet, []string, error) {
	set := domain.NewStackSet()

	idx := 0
	for ; idx < len(lines); idx++ {
		slots, ok := scanRow(lines[idx])
		if !ok {
			break
		}
		for _, s := range slots {
			set.Column(s.column).Slide(s.crate)
		}
	}

	if idx >= len(lines) {
		return nil, nil, errors.Wrapf(domain.ErrTruncatedInput, "line %d: missing lane header", idx+1)
	}
	if err := checkHeader(lines[idx], set.Len()); err != nil {
		return nil, nil, errors.Wrapf(err, "line %d", idx+1)
	}

	sep := idx + 1
	if sep >= len(lines) {
		return nil, nil, errors.Wrapf(domain.ErrTruncatedInput, "line %d: missing separator", sep+1)
	}
	if lines[sep] != "" {
		return nil, nil, errors.Wrapf(domain.ErrMissingSeparator, "line %d: got %q", sep+1, lines[sep])
	}
	return set, lines[sep+1:], nil
}
