package svcall

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlankingBothFixedRejected(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)
	b := ev.Break1
	_, _, e := callByFlankingPairs(ev, TypeDel, &b, &b)
	assert.ErrorIs(t, e, ErrBothCalled)
}

func TestFlankingInsufficientCoverage(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 5)
	_, _, e := callByFlankingPairs(ev, TypeDel, nil, nil)
	assert.ErrorIs(t, e, ErrInsufficientFlanking)
}

func TestFlankingPairFilterByEventType(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)
	// normal-sized fragments do not support a deletion
	for i := range ev.FlankingPairs {
		ev.FlankingPairs[i].Read.TemplateLength = 300
		ev.FlankingPairs[i].Mate.TemplateLength = -300
	}
	_, _, e := callByFlankingPairs(ev, TypeDel, nil, nil)
	assert.ErrorIs(t, e, ErrInsufficientFlanking)
}

func TestFlankingBounds(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)

	b1, b2, e := callByFlankingPairs(ev, TypeDel, nil, nil)
	require.NoError(t, e)

	// cover1 is [100, 168], cover2 is [500, 568], leaving
	// 450 - 69 - 100 = 281 of window on each side
	assert.Equal(t, Interval{168, 449}, b1.Interval)
	assert.Equal(t, Interval{219, 500}, b2.Interval)
	assert.Equal(t, OrientLeft, b1.Orient)
	assert.Equal(t, OrientRight, b2.Orient)
	assert.LessOrEqual(t, b1.Length(), ev.MaxExpectedFragmentSize)
	assert.LessOrEqual(t, b2.Length(), ev.MaxExpectedFragmentSize)
}

func TestFlankingOverlappingCoverage(t *testing.T) {
	ev := delEvidence()
	for i := 0; i < 20; i++ {
		read := Read{Name: "fl", Chrom: "1", Start: 100, End: 200, MateStart: 150, TemplateLength: 500}
		mate := Read{Name: "fl", Chrom: "1", Start: 150, End: 250, MateStart: 100, TemplateLength: -500}
		ev.FlankingPairs = append(ev.FlankingPairs, FlankingPair{read, mate})
	}
	_, _, e := callByFlankingPairs(ev, TypeDel, nil, nil)
	assert.ErrorIs(t, e, ErrAmbiguousCoverage)
}

func TestFlankingOversizedCoverage(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)
	// one stray pair stretches cover1 to [100, 455]: too wide for one event
	read := Read{Name: "far", Chrom: "1", Start: 400, End: 455, MateStart: 500, TemplateLength: 999}
	mate := Read{Name: "far", Chrom: "1", Start: 500, End: 549, MateStart: 400, TemplateLength: -999}
	ev.FlankingPairs = append(ev.FlankingPairs, FlankingPair{read, mate})
	_, _, e := callByFlankingPairs(ev, TypeDel, nil, nil)
	assert.ErrorIs(t, e, ErrOversizedCoverage)
}

func TestFlankingWithFixedBreak1(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)

	fixed := ev.Break1
	fixed.Interval = PointInterval(150)
	b1, b2, e := callByFlankingPairs(ev, TypeDel, &fixed, nil)
	require.NoError(t, e)
	assert.Equal(t, PointInterval(150), b1.Interval)
	assert.Equal(t, Interval{219, 500}, b2.Interval)
}

func TestFlankingFixedConflictsWithCoverage(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)

	// a fixed break2 left of cover1 leaves break1 no window at all
	fixed := ev.Break2
	fixed.Interval = PointInterval(60)
	_, _, e := callByFlankingPairs(ev, TypeDel, nil, &fixed)
	assert.ErrorIs(t, e, ErrIncompatibleWindow)
}

func TestFlankingNoPairsZeroFloor(t *testing.T) {
	// a zero threshold with nothing surviving the filter must fail, not bound
	ev := delEvidence()
	ev.MinFlankingPairsResolution = 0
	_, _, e := callByFlankingPairs(ev, TypeDel, nil, nil)
	assert.ErrorIs(t, e, ErrInsufficientFlanking)

	// normal-sized fragments all get filtered for a deletion; same outcome
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("sm%d", i)
		read := Read{Name: name, Chrom: "1", Start: int64(100 + i), End: int64(149 + i), MateStart: int64(300 + i), TemplateLength: 300}
		mate := Read{Name: name, Chrom: "1", Start: int64(300 + i), End: int64(349 + i), MateStart: int64(100 + i), TemplateLength: -300}
		ev.FlankingPairs = append(ev.FlankingPairs, FlankingPair{read, mate})
	}
	_, _, e = callByFlankingPairs(ev, TypeDel, nil, nil)
	assert.ErrorIs(t, e, ErrInsufficientFlanking)

	calls, e := CallEvents(ev, TypeDel)
	assert.Empty(t, calls)
	assert.ErrorIs(t, e, ErrInsufficientEvidence)
}

func TestFlankingInterchromosomalCovers(t *testing.T) {
	ev := transEvidence()
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("tr%d", i)
		read := Read{Name: name, Chrom: "1", Start: int64(100 + i), End: int64(149 + i), Strand: 1, MateStart: int64(120 + i)}
		mate := Read{Name: name, Chrom: "2", Start: int64(120 + i), End: int64(169 + i), Strand: -1, MateStart: int64(100 + i)}
		ev.FlankingPairs = append(ev.FlankingPairs, FlankingPair{read, mate})
	}

	// covers [100, 168] and [120, 188] collide numerically; across
	// chromosomes that is not ambiguity, and neither side clamps the other
	b1, b2, e := callByFlankingPairs(ev, TypeTrans, nil, nil)
	require.NoError(t, e)
	assert.Equal(t, "1", b1.Chrom)
	assert.Equal(t, Interval{168, 449}, b1.Interval)
	assert.Equal(t, "2", b2.Chrom)
	assert.Equal(t, Interval{1, 120}, b2.Interval)
}
