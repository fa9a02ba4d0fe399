package svcall

import (
	"fmt"
)

func flankKeep(ev *Evidence, eventType SVType, fp FlankingPair) bool {
	size := ev.FragmentSize(fp.Read, fp.Mate)
	if eventType == TypeDel && size.End <= ev.MaxExpectedFragmentSize {
		return false
	}
	if eventType == TypeIns && size.Start >= ev.MinExpectedFragmentSize {
		return false
	}
	return true
}

// callByFlankingPairs bounds the unresolved breakpoints from flanking
// read geometry. Each side's covering interval is the span of read
// extents on that side; the breakpoint must sit just outside it, within
// the slack the expected fragment size leaves after the covering
// interval and both reads are accounted for. first and second fix an
// already-resolved side; fixing both is refused since nothing is left
// to resolve.
func callByFlankingPairs(ev *Evidence, eventType SVType, first, second *Breakpoint) (Breakpoint, Breakpoint, error) {
	var none Breakpoint
	if first != nil && second != nil {
		return none, none, ErrBothCalled
	}

	var firstPositions, secondPositions []int64
	count := 0
	for _, fp := range ev.FlankingPairs {
		if !flankKeep(ev, eventType, fp) {
			continue
		}
		count++
		firstPositions = append(firstPositions, fp.Read.Start, fp.Read.End, fp.Mate.MateStart)
		secondPositions = append(secondPositions, fp.Mate.Start, fp.Mate.End, fp.Read.MateStart)
	}
	// a zero floor still needs at least one surviving pair to bound with
	if count == 0 || count < ev.MinFlankingPairsResolution {
		return none, none, fmt.Errorf("%d flanking pairs, need %d: %w", count, ev.MinFlankingPairsResolution, ErrInsufficientFlanking)
	}

	min1, max1 := MinMax(firstPositions)
	min2, max2 := MinMax(secondPositions)
	cover1 := Interval{min1, max1}
	cover2 := Interval{min2, max2}
	// log.Printf("callByFlankingPairs: cover1: %v; cover2: %v\n", cover1, cover2)

	if !ev.Interchromosomal() && cover1.Overlaps(cover2) {
		return none, none, fmt.Errorf("%v and %v: %w", cover1, cover2, ErrAmbiguousCoverage)
	}
	if cover1.Length()+2*ev.ReadLength > ev.MaxExpectedFragmentSize ||
		cover2.Length()+2*ev.ReadLength > ev.MaxExpectedFragmentSize {
		return none, none, fmt.Errorf("%v and %v vs max fragment size %d: %w",
			cover1, cover2, ev.MaxExpectedFragmentSize, ErrOversizedCoverage)
	}

	if first == nil {
		width := ev.MaxExpectedFragmentSize - cover1.Length() - 2*ev.ReadLength
		switch ev.Break1.Orient {
		case OrientLeft:
			end := cover1.End + width
			if !ev.Interchromosomal() {
				if cover2.Start-1 < end {
					end = cover2.Start - 1
				}
				if second != nil && second.End-1 < end {
					end = second.End - 1
				}
			}
			bp, e := NewBreakpoint(ev.Break1.Chrom, cover1.End, end, OrientLeft, ev.Break1.Strand)
			if e != nil {
				return none, none, fmt.Errorf("break1 vs %v: %w", cover1, ErrIncompatibleWindow)
			}
			first = &bp
		case OrientRight:
			start := cover1.Start - width
			if start < 1 {
				start = 1
			}
			end := cover1.Start
			if end < 1 {
				end = 1
			}
			bp, e := NewBreakpoint(ev.Break1.Chrom, start, end, OrientRight, ev.Break1.Strand)
			if e != nil {
				return none, none, fmt.Errorf("break1 vs %v: %w", cover1, ErrIncompatibleWindow)
			}
			first = &bp
		default:
			return none, none, fmt.Errorf("break1: %w", ErrOrientNotSpecified)
		}
	}

	if second == nil {
		width := ev.MaxExpectedFragmentSize - cover2.Length() - 2*ev.ReadLength
		switch ev.Break2.Orient {
		case OrientLeft:
			bp, e := NewBreakpoint(ev.Break2.Chrom, cover2.End, cover2.End+width, OrientLeft, ev.Break2.Strand)
			if e != nil {
				return none, none, fmt.Errorf("break2 vs %v: %w", cover2, ErrIncompatibleWindow)
			}
			second = &bp
		case OrientRight:
			start := cover2.Start - width
			if start < 1 {
				start = 1
			}
			if !ev.Interchromosomal() {
				if cover1.End+1 > start {
					start = cover1.End + 1
				}
				if first != nil && first.Start+1 > start {
					start = first.Start + 1
				}
			}
			bp, e := NewBreakpoint(ev.Break2.Chrom, start, cover2.Start, OrientRight, ev.Break2.Strand)
			if e != nil {
				return none, none, fmt.Errorf("break2 vs %v: %w", cover2, ErrIncompatibleWindow)
			}
			second = &bp
		default:
			return none, none, fmt.Errorf("break2: %w", ErrOrientNotSpecified)
		}
	}

	return *first, *second, nil
}
