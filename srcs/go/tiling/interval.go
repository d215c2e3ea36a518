package tiling

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidBounds is the cause of every constructor failure in this package.
var ErrInvalidBounds = errors.New("invalid interval bounds")

// Interval is a closed range [start, end] of non-negative integers.
// It is a plain value: two Intervals with the same bounds are interchangeable.
// The zero value is the singleton [0, 0].
type Interval struct {
	start int
	end   int
}

// NewInterval validates 0 <= start <= end and returns the interval.
func NewInterval(start, end int) (Interval, error) {
	if start < 0 || end < 0 {
		return Interval{}, errors.Wrapf(ErrInvalidBounds, "start, end >= 0 must be satisfied, got [%d, %d]", start, end)
	}
	if start > end {
		return Interval{}, errors.Wrapf(ErrInvalidBounds, "start <= end must be satisfied, got [%d, %d]", start, end)
	}
	return Interval{start: start, end: end}, nil
}

func MustNewInterval(start, end int) Interval {
	i, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) First() int { return i.start }

func (i Interval) Last() int { return i.end }

func (i Interval) Len() int { return i.end - i.start + 1 }

// Singleton reports whether the interval is a single point, i.e. start == end.
// Historically this predicate was called empty, which it never is: a valid
// interval always holds at least one element.
func (i Interval) Singleton() bool { return i.start == i.end }

// OnlyOne is the length-based spelling of Singleton.
func (i Interval) OnlyOne() bool { return i.Len() == 1 }

func (i Interval) Contains(n int) bool { return n >= i.start && n <= i.end }

func (i Interval) ContainsInterval(o Interval) bool {
	return i.start <= o.start && i.end >= o.end
}

// Before reports whether i lies strictly left of o. It is not a total order:
// overlapping intervals are before each other in neither direction.
func (i Interval) Before(o Interval) bool { return i.end < o.First() }

func (i Interval) Eq(o Interval) bool { return i.start == o.start && i.end == o.end }

func (i Interval) String() string { return fmt.Sprintf("[%d, %d]", i.start, i.end) }

// Subinterval returns the boxIndex-th of divisor sub-intervals under the
// interleaved law: the k-th boundary is Len()*k/divisor, so larger and
// smaller pieces interleave instead of the larger ones coming first, and
// piece lengths differ by at most 1.
// If the interval is too short to give every box an element, the whole
// interval is returned unchanged.
// divisor must be positive and boxIndex must be in [0, divisor).
func (i Interval) Subinterval(divisor, boxIndex int) Interval {
	if i.Len() < divisor {
		return i
	}
	first := i.Len() * boxIndex / divisor
	last := i.Len()*(boxIndex+1)/divisor - 1
	return Interval{start: i.start + first, end: i.start + last}
}

// DivideBy returns all divisor sub-intervals of the interleaved law, in
// order. They are pairwise disjoint, contiguous and cover i exactly.
// The same short-circuit as Subinterval applies: a too-short interval
// comes back as a single piece.
func (i Interval) DivideBy(divisor int) []Interval {
	if i.Len() < divisor {
		return []Interval{i}
	}
	divided := make([]Interval, divisor)
	for k := 0; k < divisor; k++ {
		divided[k] = i.Subinterval(divisor, k)
	}
	return divided
}

// The locate family below uses the uniform-block law: every block has
// exactly Len()/divisor elements and the remainder spills past the last
// block. This disagrees with the interleaved law of Subinterval whenever
// Len() is not divisible by divisor, so indices from one family must not
// be fed into the other.

// SubintervalIndex returns the uniform-block index of the global element elem.
func (i Interval) SubintervalIndex(divisor, elem int) int {
	blockSize := i.Len() / divisor
	return (elem - i.start) / blockSize
}

// SubintervalOffset returns the offset of elem within its uniform block.
func (i Interval) SubintervalOffset(divisor, elem int) int {
	blockSize := i.Len() / divisor
	relative := elem - i.start
	return relative - (relative/blockSize)*blockSize
}

// LocateInSubinterval returns the uniform-block index of elem and its
// offset within that block.
func (i Interval) LocateInSubinterval(divisor, elem int) (int, int) {
	blockSize := i.Len() / divisor
	relative := elem - i.start
	index := relative / blockSize
	return index, relative - index*blockSize
}

// LocateInInterval is the inverse of LocateInSubinterval: it turns a
// (block index, offset) pair back into the element's position relative
// to First().
func (i Interval) LocateInInterval(divisor, index, offset int) int {
	return index*(i.Len()/divisor) + offset
}

// SubintervalContaining returns the sub-interval holding elem. The block
// index comes from the uniform law while the returned bounds come from the
// interleaved one; the two agree whenever divisor divides Len().
func (i Interval) SubintervalContaining(divisor, elem int) Interval {
	return i.Subinterval(divisor, i.SubintervalIndex(divisor, elem))
}

// LargestSubintervalLen returns ceil(Len()/divisor), the length of the
// biggest piece the interleaved law can produce.
func (i Interval) LargestSubintervalLen(divisor int) int {
	if i.Len()%divisor == 0 {
		return i.Len() / divisor
	}
	return i.Len()/divisor + 1
}

// SmallestSubintervalLen returns Len()/divisor, the length of the smallest
// piece the interleaved law can produce.
func (i Interval) SmallestSubintervalLen(divisor int) int {
	return i.Len() / divisor
}
