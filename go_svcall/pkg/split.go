package svcall

import (
	"sort"

	"github.com/samber/lo"
)

// Candidate positions for one side: every position implied by enough
// split reads, where enough also means enough reads that were not
// recovered by targeted re-alignment.
func splitPositions(ev *Evidence, side int, orient Orient) map[int64][]Read {
	d := map[int64][]Read{}
	for _, r := range ev.SplitReads[side] {
		pos, e := BreakpointPos(r, orient)
		if e != nil {
			continue
		}
		d[pos] = append(d[pos], r)
	}
	for pos, reads := range d {
		if len(reads) < ev.MinSplitsReadsResolution {
			delete(d, pos)
			continue
		}
		fresh := 0
		for _, r := range reads {
			if !r.Targeted {
				fresh++
			}
		}
		if fresh < ev.MinNonTargetAlignedSplitReads {
			delete(d, pos)
		}
	}
	return d
}

func sortedPositions(d map[int64][]Read) []int64 {
	ps := lo.Keys(d)
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

func countLinks(first, second []Read) int {
	names := map[string]bool{}
	for _, r := range first {
		names[r.Name] = true
	}
	links := 0
	for _, r := range second {
		if names[r.Name] {
			links++
		}
	}
	return links
}

func newSplitCall(ev *Evidence, eventType SVType, first, second int64, methods CallPair) (*EventCall, error) {
	b1 := ev.Break1
	b1.Interval = PointInterval(first)
	b2 := ev.Break2
	b2.Interval = PointInterval(second)
	return NewEventCall(ev, eventType, b1, b2, methods)
}

// callBySupportingReads resolves breakpoints from split reads, falling
// back side by side to flanking bounds. The stages run in strict order
// and the first one to produce a call wins: linked split pairs, then
// unlinked split pairs, then one split side with the other flanked, then
// flanking only. Candidate positions are always walked in sorted order
// so identical evidence always yields identical calls.
func callBySupportingReads(ev *Evidence, eventType SVType) ([]*EventCall, []string) {
	pos1 := splitPositions(ev, 0, ev.Break1.Orient)
	pos2 := splitPositions(ev, 1, ev.Break2.Orient)
	firsts := sortedPositions(pos1)
	seconds := sortedPositions(pos2)

	var calls []*EventCall
	var reasons []string

	for _, first := range firsts {
		for _, second := range seconds {
			if !ev.Interchromosomal() && first >= second {
				continue
			}
			if countLinks(pos1[first], pos2[second]) < ev.MinLinkingSplitReads {
				continue
			}
			call, e := newSplitCall(ev, eventType, first, second, CallPair{MethodSplit, MethodSplit})
			if e != nil {
				reasons = append(reasons, e.Error())
				continue
			}
			calls = append(calls, call)
		}
	}
	if len(calls) > 0 {
		return calls, reasons
	}

	for _, first := range firsts {
		for _, second := range seconds {
			if !ev.Interchromosomal() && first >= second {
				continue
			}
			call, e := newSplitCall(ev, eventType, first, second, CallPair{MethodSplit, MethodSplit})
			if e != nil {
				reasons = append(reasons, e.Error())
				continue
			}
			calls = append(calls, call)
		}
	}
	if len(calls) > 0 {
		return calls, reasons
	}

	for _, first := range firsts {
		fixed := ev.Break1
		fixed.Interval = PointInterval(first)
		b1, b2, e := callByFlankingPairs(ev, eventType, &fixed, nil)
		if e != nil {
			reasons = append(reasons, e.Error())
			continue
		}
		call, e := NewEventCall(ev, eventType, b1, b2, CallPair{MethodSplit, MethodFlank})
		if e != nil {
			reasons = append(reasons, e.Error())
			continue
		}
		calls = append(calls, call)
	}
	for _, second := range seconds {
		fixed := ev.Break2
		fixed.Interval = PointInterval(second)
		b1, b2, e := callByFlankingPairs(ev, eventType, nil, &fixed)
		if e != nil {
			reasons = append(reasons, e.Error())
			continue
		}
		call, e := NewEventCall(ev, eventType, b1, b2, CallPair{MethodFlank, MethodSplit})
		if e != nil {
			reasons = append(reasons, e.Error())
			continue
		}
		calls = append(calls, call)
	}
	if len(calls) > 0 {
		return calls, reasons
	}

	b1, b2, e := callByFlankingPairs(ev, eventType, nil, nil)
	if e != nil {
		reasons = append(reasons, e.Error())
		return nil, reasons
	}
	call, e := NewEventCall(ev, eventType, b1, b2, CallPair{MethodFlank, MethodFlank})
	if e != nil {
		reasons = append(reasons, e.Error())
		return nil, reasons
	}
	return []*EventCall{call}, reasons
}
