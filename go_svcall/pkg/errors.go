package svcall

import (
	"errors"
	"strings"
)

var (
	ErrIncompatibleType = errors.New("event type is not compatible with the evidence")
	ErrInsufficientEvidence = errors.New("insufficient evidence to call events")
	ErrIllegalRearrangement = errors.New("orientations do not form a legal rearrangement")
	ErrOrientNotSpecified = errors.New("breakpoint orientation not specified")
	ErrMixedCallMethod = errors.New("contig call method cannot mix with split or flanking")
	ErrUnorderedBreakpoints = errors.New("break1 must precede break2 on the same chromosome")
	ErrBothCalled = errors.New("both breakpoints are already called")
	ErrBadWindow = errors.New("impossible breakpoint window")
	ErrInsufficientFlanking = errors.New("insufficient coverage to call by flanking reads")
	ErrAmbiguousCoverage = errors.New("flanking read coverage overlaps, cannot call by flanking reads")
	ErrOversizedCoverage = errors.New("flanking coverage is larger than expected for normal variation, likely flanking reads from multiple events")
	ErrIncompatibleWindow = errors.New("input breakpoint is incompatible with the flanking coverage region")
)

// Accumulated failure reasons from the resolution strategies. Reasons are
// sorted and deduplicated before this is returned to the caller.
type InsufficientEvidenceError struct {
	Reasons []string
}

func (e *InsufficientEvidenceError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

func (e *InsufficientEvidenceError) Is(target error) bool {
	return target == ErrInsufficientEvidence
}
