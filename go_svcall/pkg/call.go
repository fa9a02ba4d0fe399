package svcall

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type CallMethod int

const (
	MethodContig CallMethod = iota
	MethodSplit
	MethodFlank
)

func (m CallMethod) String() string {
	switch m {
	case MethodContig:
		return "contig"
	case MethodSplit:
		return "split reads"
	case MethodFlank:
		return "flanking reads"
	}
	return "unknown"
}

// How each side of a call was resolved. Contig resolution always covers
// both sides, so contig cannot mix with the read-based methods.
type CallPair struct {
	Break1 CallMethod
	Break2 CallMethod
}

func NewCallPair(b1, b2 CallMethod) (CallPair, error) {
	if (b1 == MethodContig) != (b2 == MethodContig) {
		return CallPair{}, fmt.Errorf("%v with %v: %w", b1, b2, ErrMixedCallMethod)
	}
	return CallPair{b1, b2}, nil
}

// EventCall is one resolved call: exact breakpoints plus a reference to
// the evidence it came from and how each side was resolved. Calls alias
// their evidence rather than copying it, so they carry identity
// semantics and must not be used as map keys.
type EventCall struct {
	BreakpointPair
	Evidence *Evidence
	EventType SVType
	Methods CallPair
	Contig *Contig
	Alignment *AlignPair
}

func NewEventCall(ev *Evidence, eventType SVType, b1, b2 Breakpoint, methods CallPair) (*EventCall, error) {
	if _, e := NewCallPair(methods.Break1, methods.Break2); e != nil {
		return nil, e
	}
	if !lo.Contains(ev.PutativeEventTypes(), eventType) {
		return nil, fmt.Errorf("calling %v from %v: %w", eventType, ev.BreakpointPair, ErrIncompatibleType)
	}
	if b1.Chrom == b2.Chrom && b1.Start >= b2.Start {
		return nil, fmt.Errorf("%v then %v: %w", b1, b2, ErrUnorderedBreakpoints)
	}
	c := &EventCall{
		BreakpointPair: BreakpointPair{
			Break1: b1,
			Break2: b2,
			OpposingStrands: ev.OpposingStrands,
			Stranded: ev.Stranded,
			UntemplatedSeq: ev.UntemplatedSeq,
			Data: ev.Data,
		},
		Evidence: ev,
		EventType: eventType,
		Methods: methods,
	}
	return c, nil
}

// CountFlankingSupport counts the flanking pairs whose insert size is
// abnormal in the direction the called event type predicts (deletions
// enlarge fragments, insertions shrink them, other types count every
// pair). Returns the distinct pair count, the median insert size, and
// the population standard deviation of the insert sizes about that
// median, or all zeroes when nothing qualifies.
func (c *EventCall) CountFlankingSupport() (int, float64, float64) {
	support := map[string]bool{}
	var sizes []float64
	for _, fp := range c.Evidence.FlankingPairs {
		for _, r := range []Read{fp.Read, fp.Mate} {
			isize := Abs(r.TemplateLength)
			if c.EventType == TypeIns && isize >= c.Evidence.MinExpectedFragmentSize {
				continue
			}
			if c.EventType == TypeDel && isize <= c.Evidence.MaxExpectedFragmentSize {
				continue
			}
			support[r.Name] = true
			sizes = append(sizes, float64(isize))
		}
	}
	if len(support) == 0 {
		return 0, 0, 0
	}
	median, e := stats.Median(sizes)
	if e != nil {
		return 0, 0, 0
	}
	var errsum float64
	for _, s := range sizes {
		d := s - median
		errsum += d * d
	}
	stdev := math.Sqrt(errsum / float64(len(sizes)))
	return len(support), median, stdev
}

func splitSupport(reads []Read, b Breakpoint) (map[string]bool, map[string]bool) {
	support := map[string]bool{}
	realigns := map[string]bool{}
	for _, r := range reads {
		pos, e := BreakpointPos(r, b.Orient)
		if e != nil {
			continue
		}
		if !b.Overlaps(PointInterval(pos)) {
			continue
		}
		support[r.Name] = true
		if r.Targeted {
			realigns[r.Name] = true
		}
	}
	return support, realigns
}

// CountSplitReadSupport counts, per side, the distinct split reads whose
// implied position lands exactly on the called breakpoint, the targeted
// re-alignment subset of those, and the reads supporting both sides.
func (c *EventCall) CountSplitReadSupport() (int, int, int, int, int) {
	support1, realigns1 := splitSupport(c.Evidence.SplitReads[0], c.Break1)
	support2, realigns2 := splitSupport(c.Evidence.SplitReads[1], c.Break2)
	links := 0
	for name := range support1 {
		if support2[name] {
			links++
		}
	}
	return len(support1), len(realigns1), len(support2), len(realigns2), links
}
