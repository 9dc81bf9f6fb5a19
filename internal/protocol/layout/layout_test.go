package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"cratemover/internal/domain"
	"cratemover/internal/protocol/layout"
)

type LayoutSuite struct {
	suite.Suite
}

func TestLayoutSuite(t *testing.T) {
	suite.Run(t, new(LayoutSuite))
}

func (s *LayoutSuite) TestParse_Sample() {
	require := require.New(s.T())
	lines := []string{
		"    [D]    ",
		"[N] [C]    ",
		"[Z] [M] [P]",
		" 1   2   3 ",
		"",
		"move 1 from 2 to 1",
	}

	set, rest, err := layout.Parse(lines)
	require.NoError(err)
	require.Equal([][]domain.Crate{
		{"Z", "N"},
		{"M", "C", "D"},
		{"P"},
	}, set.Snapshot())
	require.Equal([]string{"move 1 from 2 to 1"}, rest)
}

func (s *LayoutSuite) TestParse_SizesAndLaneOrder() {
	require := require.New(s.T())
	lines := []string{
		"[A]",
		"[B]     [F]",
		"[C] [D] [E]",
		" 1   2   3",
		"",
	}

	set, rest, err := layout.Parse(lines)
	require.NoError(err)
	require.Empty(rest)
	require.Equal(3, set.Len())

	sizes := make([]int, 0, set.Len())
	for l := domain.Lane(1); int(l) <= set.Len(); l++ {
		st, ok := set.Lane(l)
		require.True(ok)
		sizes = append(sizes, st.Len())
	}
	require.Equal([]int{3, 1, 2}, sizes)
	require.Equal([][]domain.Crate{{"C", "B", "A"}, {"D"}, {"E", "F"}}, set.Snapshot())
}

func (s *LayoutSuite) TestParse_ShortRowKeepsLastSlot() {
	require := require.New(s.T())
	lines := []string{
		"        [X]",
		"[A] [B] [C]",
		" 1   2   3",
		"",
	}

	set, _, err := layout.Parse(lines)
	require.NoError(err)
	require.Equal([][]domain.Crate{{"A"}, {"B"}, {"C", "X"}}, set.Snapshot())
}

func (s *LayoutSuite) TestParse_FirstRowWideGap() {
	require := require.New(s.T())

	set, rest, err := layout.Parse([]string{"[A]    [C]", " 1   2   3", ""})
	require.NoError(err)
	require.Empty(rest)
	require.Equal([][]domain.Crate{{"A"}, nil, {"C"}}, set.Snapshot())
}

func (s *LayoutSuite) TestParse_FirstRowTrailingText() {
	require := require.New(s.T())

	set, _, err := layout.Parse([]string{"[A] [B] [C] x", " 1   2   3", ""})
	require.NoError(err)
	require.Equal([][]domain.Crate{{"A"}, {"B"}, {"C"}}, set.Snapshot())
}

func (s *LayoutSuite) TestParse_NonASCIILabelEndsDiagram() {
	// Labels are single ASCII word characters; "[é]" is not a slot.
	_, _, err := layout.Parse([]string{"[B]", "[é]", " 1", ""})
	s.Require().ErrorIs(err, domain.ErrLaneHeader)
	s.Require().Contains(err.Error(), "line 2")
}

func (s *LayoutSuite) TestParse_EmptyDiagram() {
	require := require.New(s.T())

	set, rest, err := layout.Parse([]string{"", "", "move 1 from 1 to 2"})
	require.NoError(err)
	require.Zero(set.Len())
	require.Equal([]string{"move 1 from 1 to 2"}, rest)
}

func (s *LayoutSuite) TestParse_HeaderSequenceBroken() {
	lines := []string{
		"[A] [B] [C]",
		"1 2 4",
		"",
	}
	_, _, err := layout.Parse(lines)
	s.Require().ErrorIs(err, domain.ErrLaneHeader)
	s.Require().Contains(err.Error(), "line 2")
}

func (s *LayoutSuite) TestParse_HeaderTooManyLanes() {
	_, _, err := layout.Parse([]string{"[A] [B]", " 1   2   3", ""})
	s.Require().ErrorIs(err, domain.ErrLaneHeader)
}

func (s *LayoutSuite) TestParse_HeaderOutOfOrder() {
	_, _, err := layout.Parse([]string{"[A] [B]", " 2   1", ""})
	s.Require().ErrorIs(err, domain.ErrLaneHeader)
}

func (s *LayoutSuite) TestParse_MalformedRowEndsDiagram() {
	// "[AB]" is not a slot and nothing precedes it, so the row is taken as
	// the header.
	_, _, err := layout.Parse([]string{"[A] [B]", "[AB] [C]", " 1   2", ""})
	s.Require().ErrorIs(err, domain.ErrLaneHeader)
}

func (s *LayoutSuite) TestParse_MissingHeader() {
	_, _, err := layout.Parse([]string{"[A] [B]"})
	s.Require().ErrorIs(err, domain.ErrTruncatedInput)

	_, _, err = layout.Parse(nil)
	s.Require().ErrorIs(err, domain.ErrTruncatedInput)
}

func (s *LayoutSuite) TestParse_MissingSeparatorAtEOF() {
	_, _, err := layout.Parse([]string{"[A]", " 1"})
	s.Require().ErrorIs(err, domain.ErrTruncatedInput)
}

func (s *LayoutSuite) TestParse_NonEmptySeparator() {
	_, _, err := layout.Parse([]string{"[A]", " 1", "move 1 from 1 to 1"})
	s.Require().ErrorIs(err, domain.ErrMissingSeparator)
}

func (s *LayoutSuite) TestParse_FailureIsDeterministic() {
	lines := []string{"[A] [B] [C]", "1 2 4", ""}
	_, _, first := layout.Parse(lines)
	_, _, second := layout.Parse(lines)
	s.Require().ErrorIs(first, domain.ErrLaneHeader)
	s.Require().ErrorIs(second, domain.ErrLaneHeader)
	s.Require().Equal(first.Error(), second.Error())
}
