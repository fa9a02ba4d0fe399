package svcall

import (
	"fmt"
)

type Orient int

const (
	OrientNS Orient = iota
	OrientLeft
	OrientRight
)

func (o Orient) String() string {
	switch o {
	case OrientLeft:
		return "L"
	case OrientRight:
		return "R"
	}
	return "?"
}

func ParseOrient(s string) Orient {
	switch s {
	case "L":
		return OrientLeft
	case "R":
		return OrientRight
	}
	return OrientNS
}

// Strand is encoded the same way read direction is: +1 forward, -1
// reverse, 0 unspecified.
func StrandString(dir int) string {
	switch {
	case dir > 0:
		return "+"
	case dir < 0:
		return "-"
	}
	return "?"
}

// One side of a structural variant: the position (a point once resolved,
// an interval before that), which side of the position is retained, and
// optionally the strand and local sequence.
type Breakpoint struct {
	Chrom string
	Interval
	Orient Orient
	Strand int
	Seq string
}

// Coordinates are 1-based genomic; end < start marks an impossible
// window and is rejected here so callers can detect it.
func NewBreakpoint(chrom string, start, end int64, orient Orient, strand int) (Breakpoint, error) {
	var b Breakpoint
	if start < 1 || end < start {
		return b, fmt.Errorf("breakpoint %v:%d-%d: %w", chrom, start, end, ErrBadWindow)
	}
	b.Chrom = chrom
	b.Interval = Interval{start, end}
	b.Orient = orient
	b.Strand = strand
	return b, nil
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("%s:%d-%d%s", b.Chrom, b.Start, b.End, b.Orient)
}

type BreakpointPair struct {
	Break1 Breakpoint
	Break2 Breakpoint
	OpposingStrands bool
	Stranded bool
	UntemplatedSeq string
	Data map[string]string
}

func (p BreakpointPair) Interchromosomal() bool {
	return p.Break1.Chrom != p.Break2.Chrom
}

func (p BreakpointPair) String() string {
	return fmt.Sprintf("%v==>%v", p.Break1, p.Break2)
}
