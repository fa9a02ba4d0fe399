package svcall

import (
	"fmt"
)

// A 1-based inclusive genomic interval.
type Interval struct {
	Start int64
	End int64
}

func PointInterval(pos int64) Interval {
	return Interval{pos, pos}
}

func (i Interval) Length() int64 {
	return i.End - i.Start + 1
}

// Check if two closed intervals share at least one position
func (i Interval) Overlaps(j Interval) bool {
	return i.Start <= j.End && j.Start <= i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Start, i.End)
}

func MinMax(ps []int64) (int64, int64) {
	min, max := ps[0], ps[0]
	for _, p := range ps[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
