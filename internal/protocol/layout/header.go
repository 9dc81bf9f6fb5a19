package layout

import (
	"strconv"

	"github.com/pkg/errors"

	"cratemover/internal/domain"
)

// checkHeader verifies that line numbers exactly lanes lanes as 1, 2, ..., n.
// Numbers are counted from the left until one breaks the sequence; a header
// that names the right lanes in another order is rejected.
func checkHeader(line string, lanes int) error {
	numbered := 0
	for i, token := range laneTokens(line) {
		n, err := strconv.Atoi(token)
		if err != nil || n != i+1 {
			break
		}
		numbered++
	}
	if numbered != lanes {
		return errors.Wrapf(domain.ErrLaneHeader,
			"header %q numbers %d lanes in sequence, diagram has %d", line, numbered, lanes)
	}
	return nil
}

// laneTokens returns every maximal run of ASCII digits in line.
func laneTokens(line string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(line); i++ {
		digit := '0' <= line[i] && line[i] <= '9'
		switch {
		case digit && start < 0:
			start = i
		case !digit && start >= 0:
			tokens = append(tokens, line[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}
