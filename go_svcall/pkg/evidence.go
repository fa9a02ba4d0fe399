package svcall

import (
	"fmt"
)

// A classified read as handed over by the evidence-gathering stage.
// Start and End are the 1-based inclusive aligned span on Chrom.
// MateStart is where the aligner placed this read's mate. Targeted marks
// reads recovered only by directed re-alignment to the expected
// breakpoint; untargeted discoveries are weighted more trustworthy.
type Read struct {
	Name string
	Chrom string
	Start int64
	End int64
	Strand int
	MateStart int64
	TemplateLength int64
	Targeted bool
}

// The reference position a split read implies for a breakpoint with the
// given orientation: the retained side ends where the alignment breaks.
func BreakpointPos(r Read, o Orient) (int64, error) {
	switch o {
	case OrientLeft:
		return r.End, nil
	case OrientRight:
		return r.Start, nil
	}
	return 0, fmt.Errorf("read %v: %w", r.Name, ErrOrientNotSpecified)
}

// Mated reads spanning, but not touching, a putative breakpoint.
type FlankingPair struct {
	Read Read
	Mate Read
}

// One alignment result for a contig: a primary alignment and, for split
// alignments, the mate half.
type AlignPair struct {
	Read1 Read
	Read2 *Read
}

// A locally assembled sequence spanning a putative breakpoint.
type Contig struct {
	Seq string
	Alignments []AlignPair
	RemapScore float64
}

// AlignCallFunc derives an exact breakpoint pair from one contig
// alignment pair. Alignment itself happens upstream; this only reads the
// recorded geometry, and may fail per pair.
type AlignCallFunc func(ev *Evidence, a AlignPair) (BreakpointPair, error)

// Evidence is the fully classified input to the calling engine: the
// original (coarse) breakpoint pair plus the reads and contigs gathered
// for it and the thresholds the resolution strategies apply. It is
// produced by the evidence-gathering stage and never mutated here.
type Evidence struct {
	BreakpointPair

	// SplitReads[0] implies a breakpoint on the break1 side, [1] on break2
	SplitReads [2][]Read
	FlankingPairs []FlankingPair
	Contigs []Contig

	ReadLength int64
	MinExpectedFragmentSize int64
	MaxExpectedFragmentSize int64
	MinFlankingPairsResolution int
	MinSplitsReadsResolution int
	MinNonTargetAlignedSplitReads int
	MinLinkingSplitReads int

	AlignCall AlignCallFunc `json:"-"`
}

// The event types this evidence could support at all, from its
// orientation and strand geometry. Empty when the geometry is illegal.
func (ev *Evidence) PutativeEventTypes() []SVType {
	types, e := Classify(ev.BreakpointPair)
	if e != nil {
		return nil
	}
	return types
}

// The fragment-size estimate for one flanking pair. A single estimate
// from the recorded template length; kept as an interval so policies can
// compare lower and upper bounds separately.
func (ev *Evidence) FragmentSize(r, m Read) Interval {
	n := Abs(r.TemplateLength)
	if n == 0 {
		n = Abs(m.TemplateLength)
	}
	return Interval{n, n}
}
