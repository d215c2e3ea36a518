package tiling

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lsds/tileplan/srcs/go/log"
	"github.com/lsds/tileplan/srcs/go/utils/assert"
)

func Test_NewInterval2DFromBounds_InvalidBounds(t *testing.T) {
	_, err := NewInterval2DFromBounds(0, -1, 0, 3)
	require.ErrorIs(t, err, ErrInvalidBounds)
	_, err = NewInterval2DFromBounds(0, 1, 4, 3)
	require.ErrorIs(t, err, ErrInvalidBounds)
	m, err := NewInterval2DFromBounds(0, 1, 0, 3)
	require.NoError(t, err)
	require.True(t, m.Eq(NewInterval2D(MustNewInterval(0, 1), MustNewInterval(0, 3))))
}

func Test_Interval2D_Size(t *testing.T) {
	m := NewInterval2D(MustNewInterval(0, 1), MustNewInterval(0, 3))
	assert.True(m.Size() == 8)
	assert.True(m.String() == `rows [0, 1]; columns: [0, 3]`)
}

func Test_Interval2D_LocalGlobalIndex(t *testing.T) {
	m := NewInterval2D(MustNewInterval(0, 1), MustNewInterval(0, 3))

	// column-major: walking a column advances the index by one,
	// walking a row advances it by the column height
	assert.True(m.LocalIndex(0, 0) == 0)
	assert.True(m.LocalIndex(1, 0) == 1)
	assert.True(m.LocalIndex(0, 1) == 2)
	assert.True(m.LocalIndex(1, 2) == 5)

	row, col := m.GlobalIndex(5)
	assert.True(row == 1 && col == 2)

	// outside the region the sentinel is returned, never an error
	assert.True(m.LocalIndex(2, 0) == -1)
	assert.True(m.LocalIndex(0, 4) == -1)
	assert.True(m.LocalIndex(-1, 0) == -1)
}

func Test_Interval2D_IndexRoundTrip(t *testing.T) {
	m := NewInterval2D(MustNewInterval(2, 5), MustNewInterval(3, 9))
	seen := make(map[int]bool)
	for row := m.Rows().First(); row <= m.Rows().Last(); row++ {
		for col := m.Cols().First(); col <= m.Cols().Last(); col++ {
			local := m.LocalIndex(row, col)
			require.True(t, local >= 0 && local < m.Size())
			require.False(t, seen[local], "local index %d assigned twice", local)
			seen[local] = true
			gotRow, gotCol := m.GlobalIndex(local)
			require.Equal(t, row, gotRow)
			require.Equal(t, col, gotCol)
		}
	}
	for local := 0; local < m.Size(); local++ {
		row, col := m.GlobalIndex(local)
		require.Equal(t, local, m.LocalIndex(row, col))
	}
}

func Test_Interval2D_Contains(t *testing.T) {
	m := NewInterval2D(MustNewInterval(2, 5), MustNewInterval(3, 9))
	assert.True(m.Contains(2, 3))
	assert.True(m.Contains(5, 9))
	assert.True(!m.Contains(1, 3))
	assert.True(!m.Contains(2, 10))

	assert.True(m.ContainsRegion(m))
	assert.True(m.ContainsRegion(NewInterval2D(MustNewInterval(3, 4), MustNewInterval(4, 8))))
	assert.True(!m.ContainsRegion(NewInterval2D(MustNewInterval(0, 4), MustNewInterval(4, 8))))
}

func Test_Interval2D_Before(t *testing.T) {
	top := NewInterval2D(MustNewInterval(0, 1), MustNewInterval(0, 3))
	bottom := NewInterval2D(MustNewInterval(2, 3), MustNewInterval(0, 3))
	assert.True(top.Before(bottom))
	assert.True(!bottom.Before(top))
	assert.True(!top.Before(top))

	left := NewInterval2D(MustNewInterval(0, 3), MustNewInterval(0, 1))
	right := NewInterval2D(MustNewInterval(0, 3), MustNewInterval(2, 3))
	assert.True(left.Before(right))
	assert.True(!right.Before(left))

	// strictly before in one axis but not nested in the other
	skewed := NewInterval2D(MustNewInterval(2, 3), MustNewInterval(4, 9))
	assert.True(!top.Before(skewed))
}

func Test_Interval2D_SplitBy(t *testing.T) {
	m := NewInterval2D(MustNewInterval(0, 3), MustNewInterval(0, 9))
	require.Equal(t, 40, m.Size())
	require.Equal(t, 12, m.SplitBy(3, 0))
	require.Equal(t, 12, m.SplitBy(3, 1))
	require.Equal(t, 16, m.SplitBy(3, 2))

	var total int
	for index := 0; index < 3; index++ {
		total += m.SplitBy(3, index)
	}
	require.Equal(t, m.Size(), total)
}

func Test_Interval2D_SplitBy_Sentinel(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stdout)

	m := NewInterval2D(MustNewInterval(0, 1), MustNewInterval(0, 3))
	require.Equal(t, -1, m.SplitBy(3, 3))
	require.Equal(t, -1, m.SplitBy(3, 5))
	require.Equal(t, -1, m.SplitBy(5, 0)) // only 4 columns to divide
	require.Contains(t, buf.String(), "SplitBy")
}

func Test_Interval2D_CheckSplit(t *testing.T) {
	m := NewInterval2D(MustNewInterval(0, 1), MustNewInterval(0, 3))
	require.NoError(t, m.CheckSplit(2, 0))
	require.NoError(t, m.CheckSplit(2, 1))

	err := m.CheckSplit(3, 3)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	err = m.CheckSplit(5, 0)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.False(t, errors.Is(err, ErrInvalidBounds))
}

func Test_Interval2D_Submatrix(t *testing.T) {
	m := NewInterval2D(MustNewInterval(0, 3), MustNewInterval(0, 9))
	want := []Interval{
		MustNewInterval(0, 2),
		MustNewInterval(3, 5),
		MustNewInterval(6, 9),
	}
	var total int
	for index, cols := range want {
		sub := m.Submatrix(3, index)
		require.True(t, sub.Rows().Eq(m.Rows()), "rows must never be split")
		require.True(t, sub.Cols().Eq(cols))
		require.Equal(t, m.SplitBy(3, index), sub.Size())
		total += sub.Size()
	}
	require.Equal(t, m.Size(), total)
}

func Test_Interval2D_Submatrix_CoversRegion(t *testing.T) {
	m := NewInterval2D(MustNewInterval(1, 6), MustNewInterval(2, 14))
	for _, np := range []int{1, 2, 3, 5, 13} {
		counted := 0
		for rank := 0; rank < np; rank++ {
			sub := m.Submatrix(np, rank)
			require.True(t, m.ContainsRegion(sub))
			counted += sub.Size()
			if rank > 0 {
				prev := m.Submatrix(np, rank-1)
				require.True(t, prev.Before(sub), strings.Join([]string{prev.String(), sub.String()}, " !before "))
			}
		}
		require.Equal(t, m.Size(), counted)
	}
}
