package tiling

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lsds/tileplan/srcs/go/log"
	"github.com/lsds/tileplan/srcs/go/utils"
)

// ErrIndexOutOfRange is the cause reported by CheckSplit when a column
// split cannot be answered.
var ErrIndexOutOfRange = errors.New("split index out of range")

// Interval2D is a rectangular index region: a row interval paired with a
// column interval. Like Interval it is a plain value; the two axes are
// owned by value and never shared.
type Interval2D struct {
	rows Interval
	cols Interval
}

// NewInterval2D pairs two already valid intervals.
func NewInterval2D(rows, cols Interval) Interval2D {
	return Interval2D{rows: rows, cols: cols}
}

// NewInterval2DFromBounds builds the region from raw bounds, validating
// both axes the way NewInterval does.
func NewInterval2DFromBounds(rowStart, rowEnd, colStart, colEnd int) (Interval2D, error) {
	rows, err := NewInterval(rowStart, rowEnd)
	if err != nil {
		return Interval2D{}, err
	}
	cols, err := NewInterval(colStart, colEnd)
	if err != nil {
		return Interval2D{}, err
	}
	return Interval2D{rows: rows, cols: cols}, nil
}

func (m Interval2D) Rows() Interval { return m.rows }

func (m Interval2D) Cols() Interval { return m.cols }

func (m Interval2D) Contains(row, col int) bool {
	return m.rows.Contains(row) && m.cols.Contains(col)
}

func (m Interval2D) ContainsRegion(o Interval2D) bool {
	return m.rows.ContainsInterval(o.rows) && m.cols.ContainsInterval(o.cols)
}

// Before reports whether m precedes o in a tiling where only one axis is
// split at a time: strictly before on one axis while nested in the other.
func (m Interval2D) Before(o Interval2D) bool {
	return (m.rows.Before(o.rows) && o.cols.ContainsInterval(m.cols)) ||
		(m.cols.Before(o.cols) && o.rows.ContainsInterval(m.rows))
}

func (m Interval2D) Eq(o Interval2D) bool {
	return m.rows.Eq(o.rows) && m.cols.Eq(o.cols)
}

func (m Interval2D) String() string {
	return fmt.Sprintf("rows %s; columns: %s", m.rows, m.cols)
}

// LocalIndex flattens a global coordinate into the 0-based column-major
// offset within the region, or -1 when (row, col) lies outside it.
func (m Interval2D) LocalIndex(row, col int) int {
	if !m.Contains(row, col) {
		return -1
	}
	row -= m.rows.First()
	col -= m.cols.First()
	return col*m.rows.Len() + row
}

// GlobalIndex is the inverse of LocalIndex. The caller must keep
// localIndex within [0, Size()); no check is performed.
func (m Interval2D) GlobalIndex(localIndex int) (int, int) {
	row := m.rows.First() + localIndex%m.rows.Len()
	col := m.cols.First() + localIndex/m.rows.Len()
	return row, col
}

// SplitBy returns the element count of the index-th column-wise split of
// the region, splitting cols with the interleaved law and leaving rows
// whole. An unanswerable query is soft: it logs a diagnostic and returns
// the -1 sentinel instead of failing.
func (m Interval2D) SplitBy(divisor, index int) int {
	if index < 0 || index >= divisor {
		log.Warnf("Interval2D.SplitBy: trying to access subinterval %d, out of %d total subintervals", index, divisor)
		return -1
	}
	if m.cols.Len() < divisor {
		log.Warnf("Interval2D.SplitBy: trying to divide the column interval of length %d into %s",
			m.cols.Len(), utils.Pluralize(divisor, "subinterval", "subintervals"))
		return -1
	}
	return m.rows.Len() * m.cols.Subinterval(divisor, index).Len()
}

// CheckSplit reports as an error the condition under which SplitBy would
// return its sentinel, for callers that want to pre-validate a split
// instead of watching for -1.
func (m Interval2D) CheckSplit(divisor, index int) error {
	if index < 0 || index >= divisor {
		return errors.Wrapf(ErrIndexOutOfRange, "subinterval %d of %d", index, divisor)
	}
	if m.cols.Len() < divisor {
		return errors.Wrapf(ErrIndexOutOfRange, "cannot divide %d columns into %d subintervals", m.cols.Len(), divisor)
	}
	return nil
}

// Size returns the total element count of the region.
func (m Interval2D) Size() int {
	return m.SplitBy(1, 0)
}

// Submatrix returns the region made of the same rows and the index-th
// column split of cols.
func (m Interval2D) Submatrix(divisor, index int) Interval2D {
	return Interval2D{rows: m.rows, cols: m.cols.Subinterval(divisor, index)}
}
