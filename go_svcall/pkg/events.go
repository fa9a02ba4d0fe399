package svcall

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// CallEvents resolves exact breakpoints for one requested event type.
// Contig evidence wins outright when it produces anything; otherwise the
// read-based strategies run. On failure the error carries every distinct
// reason collected along the way, sorted.
func CallEvents(ev *Evidence, eventType SVType) ([]*EventCall, error) {
	if !lo.Contains(ev.PutativeEventTypes(), eventType) {
		return nil, fmt.Errorf("calling %v from %v: %w", eventType, ev.BreakpointPair, ErrIncompatibleType)
	}

	calls := callByContigs(ev, eventType)
	if len(calls) > 0 {
		return calls, nil
	}

	calls, reasons := callBySupportingReads(ev, eventType)
	if len(calls) > 0 {
		return calls, nil
	}
	if len(reasons) == 0 {
		return nil, ErrInsufficientEvidence
	}
	reasons = lo.Uniq(reasons)
	sort.Strings(reasons)
	return nil, &InsufficientEvidenceError{Reasons: reasons}
}
