package svcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delCall(t *testing.T, ev *Evidence) *EventCall {
	t.Helper()
	b1 := ev.Break1
	b1.Interval = PointInterval(100)
	b2 := ev.Break2
	b2.Interval = PointInterval(500)
	c, e := NewEventCall(ev, TypeDel, b1, b2, CallPair{MethodSplit, MethodSplit})
	require.NoError(t, e)
	return c
}

func TestNewCallPairRejectsMixedContig(t *testing.T) {
	_, e := NewCallPair(MethodContig, MethodSplit)
	assert.ErrorIs(t, e, ErrMixedCallMethod)
	_, e = NewCallPair(MethodFlank, MethodContig)
	assert.ErrorIs(t, e, ErrMixedCallMethod)

	p, e := NewCallPair(MethodContig, MethodContig)
	require.NoError(t, e)
	assert.Equal(t, CallPair{MethodContig, MethodContig}, p)

	_, e = NewCallPair(MethodSplit, MethodFlank)
	assert.NoError(t, e)
}

func TestNewEventCallValidation(t *testing.T) {
	ev := delEvidence()

	b1 := ev.Break1
	b1.Interval = PointInterval(500)
	b2 := ev.Break2
	b2.Interval = PointInterval(100)
	_, e := NewEventCall(ev, TypeDel, b1, b2, CallPair{MethodSplit, MethodSplit})
	assert.ErrorIs(t, e, ErrUnorderedBreakpoints)

	_, e = NewEventCall(ev, TypeInv, ev.Break1, ev.Break2, CallPair{MethodSplit, MethodSplit})
	assert.ErrorIs(t, e, ErrIncompatibleType)

	_, e = NewEventCall(ev, TypeDel, ev.Break1, ev.Break2, CallPair{MethodContig, MethodSplit})
	assert.ErrorIs(t, e, ErrMixedCallMethod)
}

func TestCountFlankingSupportEmpty(t *testing.T) {
	ev := delEvidence()
	c := delCall(t, ev)

	n, median, stdev := c.CountFlankingSupport()
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, median)
	assert.Equal(t, 0.0, stdev)
}

func TestCountFlankingSupportDeletion(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)
	c := delCall(t, ev)

	n, median, stdev := c.CountFlankingSupport()
	assert.Equal(t, 20, n)
	assert.Equal(t, 500.0, median)
	assert.Equal(t, 0.0, stdev)
}

func TestCountFlankingSupportFiltersNormalFragments(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)
	// half the pairs shrink to normal size and stop counting
	for i := 0; i < 10; i++ {
		ev.FlankingPairs[i].Read.TemplateLength = 300
		ev.FlankingPairs[i].Mate.TemplateLength = -300
	}
	c := delCall(t, ev)

	n, median, _ := c.CountFlankingSupport()
	assert.Equal(t, 10, n)
	assert.Equal(t, 500.0, median)
}

func TestCountFlankingSupportInsertion(t *testing.T) {
	ev := delEvidence()
	addFlanking(ev, 20)
	// oversized fragments do not support an insertion
	b1 := ev.Break1
	b1.Interval = PointInterval(100)
	b2 := ev.Break2
	b2.Interval = PointInterval(500)
	c, e := NewEventCall(ev, TypeIns, b1, b2, CallPair{MethodSplit, MethodSplit})
	require.NoError(t, e)

	n, _, _ := c.CountFlankingSupport()
	assert.Equal(t, 0, n)
}

func TestCountSplitReadSupport(t *testing.T) {
	ev := delEvidence()
	addSplits(ev, 0, 100, 6, false)
	addSplits(ev, 1, 500, 6, false)
	// a read breaking elsewhere never counts, even though it is in the collection
	ev.SplitReads[0] = append(ev.SplitReads[0], Read{Name: "stray", Chrom: "1", Start: 30, End: 110, Strand: 1})
	// a targeted re-alignment counts in both tallies
	ev.SplitReads[0] = append(ev.SplitReads[0], Read{Name: "forced", Chrom: "1", Start: 30, End: 100, Strand: 1, Targeted: true})
	c := delCall(t, ev)

	n1, forced1, n2, forced2, links := c.CountSplitReadSupport()
	assert.Equal(t, 7, n1)
	assert.Equal(t, 1, forced1)
	assert.Equal(t, 6, n2)
	assert.Equal(t, 0, forced2)
	assert.Equal(t, 6, links)
}

func TestEventCallAliasesEvidence(t *testing.T) {
	ev := delEvidence()
	c := delCall(t, ev)
	assert.Same(t, ev, c.Evidence)
	assert.Equal(t, ev.OpposingStrands, c.OpposingStrands)
}
