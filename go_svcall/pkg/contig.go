package svcall

import (
	"fmt"

	"github.com/samber/lo"
)

// callByContigs turns contig alignments into calls. Alignment pairs the
// evidence's align caller cannot resolve are skipped, not reported: a
// contig that fails to produce a call just leaves resolution to the
// read-based strategies.
func callByContigs(ev *Evidence, eventType SVType) []*EventCall {
	var calls []*EventCall
	if ev.AlignCall == nil {
		return nil
	}
	for i := range ev.Contigs {
		ctg := &ev.Contigs[i]
		for j := range ctg.Alignments {
			aln := &ctg.Alignments[j]
			bpp, e := ev.AlignCall(ev, *aln)
			if e != nil {
				continue
			}
			if bpp.OpposingStrands != ev.OpposingStrands {
				continue
			}
			if eventType == TypeIns && bpp.UntemplatedSeq == "" {
				continue
			}
			types, e := Classify(bpp)
			if e != nil || !lo.Contains(types, eventType) {
				continue
			}
			call, e := NewEventCall(ev, eventType, bpp.Break1, bpp.Break2, CallPair{MethodContig, MethodContig})
			if e != nil {
				continue
			}
			call.UntemplatedSeq = bpp.UntemplatedSeq
			call.Contig = ctg
			call.Alignment = aln
			calls = append(calls, call)
		}
	}
	return calls
}

// PairedAlignCall is a basic align caller for colinear split alignments:
// the contig's first half ends at break1, its second half starts at
// break2. It covers the common same-strand cases; richer callers can be
// plugged in through Evidence.AlignCall instead.
func PairedAlignCall(ev *Evidence, a AlignPair) (BreakpointPair, error) {
	if a.Read2 == nil {
		return BreakpointPair{}, fmt.Errorf("alignment of %v has no mate half", a.Read1.Name)
	}
	r1, r2 := a.Read1, *a.Read2
	if r2.Chrom < r1.Chrom || (r1.Chrom == r2.Chrom && r2.Start < r1.Start) {
		r1, r2 = r2, r1
	}
	b1, e := NewBreakpoint(r1.Chrom, r1.End, r1.End, OrientLeft, r1.Strand)
	if e != nil {
		return BreakpointPair{}, e
	}
	b2, e := NewBreakpoint(r2.Chrom, r2.Start, r2.Start, OrientRight, r2.Strand)
	if e != nil {
		return BreakpointPair{}, e
	}
	opposing := r1.Strand != 0 && r2.Strand != 0 && r1.Strand != r2.Strand
	return BreakpointPair{
		Break1: b1,
		Break2: b2,
		OpposingStrands: opposing,
		Stranded: ev.Stranded,
	}, nil
}
