package move_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cratemover/internal/domain"
	"cratemover/internal/protocol/move"
)

func TestParseLine_OK(t *testing.T) {
	m, err := move.ParseLine("move 12 from 3 to 10")
	require.NoError(t, err)
	require.Equal(t, domain.Move{Count: 12, Source: 3, Destination: 10}, m)
	require.Equal(t, "move 12 from 3 to 10", m.String())
}

func TestParseLine_ZeroValuesParse(t *testing.T) {
	m, err := move.ParseLine("move 0 from 0 to 0")
	require.NoError(t, err)
	require.Equal(t, domain.Move{}, m)
}

func TestParseLine_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"move 1 from 2 to 3 ",
		"move 1 from 2 to 3x",
		" move 1 from 2 to 3",
		"move  1 from 2 to 3",
		"move -1 from 2 to 3",
		"move +1 from 2 to 3",
		"move one from 2 to 3",
		"move 1 from 2 into 3",
		"Move 1 from 2 to 3",
		"move 1 from 2 to 99999999999999999999999",
		"move 1 from 2\tto 3",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := move.ParseLine(line)
			require.ErrorIs(t, err, domain.ErrMalformedMove)
		})
	}
}

func TestParseAll_ReportsLineNumber(t *testing.T) {
	lines := []string{
		"move 1 from 2 to 1",
		"move 1 from 2 to",
	}
	_, err := move.ParseAll(lines, 6)
	require.ErrorIs(t, err, domain.ErrMalformedMove)
	require.Contains(t, err.Error(), "line 7")
	require.Contains(t, err.Error(), `"move 1 from 2 to"`)

	// Same input, same failure.
	_, again := move.ParseAll(lines, 6)
	require.Equal(t, err.Error(), again.Error())
}

func TestParseAll_Empty(t *testing.T) {
	moves, err := move.ParseAll(nil, 1)
	require.NoError(t, err)
	require.Empty(t, moves)
}
