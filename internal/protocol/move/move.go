package move

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"cratemover/internal/domain"
)

// ParseLine parses a single move instruction.
func ParseLine(line string) (domain.Move, error) {
	f := strings.Split(line, " ")
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return domain.Move{}, errors.Wrapf(domain.ErrMalformedMove, "%q", line)
	}
	count, ok := parseNumber(f[1])
	if !ok {
		return domain.Move{}, errors.Wrapf(domain.ErrMalformedMove, "%q: bad count %q", line, f[1])
	}
	source, ok := parseNumber(f[3])
	if !ok {
		return domain.Move{}, errors.Wrapf(domain.ErrMalformedMove, "%q: bad source lane %q", line, f[3])
	}
	destination, ok := parseNumber(f[5])
	if !ok {
		return domain.Move{}, errors.Wrapf(domain.ErrMalformedMove, "%q: bad destination lane %q", line, f[5])
	}
	return domain.Move{
		Count:       count,
		Source:      domain.Lane(source),
		Destination: domain.Lane(destination),
	}, nil
}

// ParseAll parses every line as a move. firstLine is the 1-based input line
// number of lines[0], used in error messages.
func ParseAll(lines []string, firstLine int) ([]domain.Move, error) {
	moves := make([]domain.Move, 0, len(lines))
	for i, line := range lines {
		m, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", firstLine+i)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// parseNumber accepts a non-empty run of ASCII digits that fits in a uint.
func parseNumber(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
