package svcall

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

type SVType string

const (
	TypeDel SVType = "deletion"
	TypeIns SVType = "insertion"
	TypeDup SVType = "duplication"
	TypeInv SVType = "inversion"
	TypeTrans SVType = "translocation"
	TypeITrans SVType = "inverted translocation"
)

func expandOrient(o Orient) []Orient {
	if o == OrientNS {
		return []Orient{OrientLeft, OrientRight}
	}
	return []Orient{o}
}

func comboTypes(o1, o2 Orient, opposing, interchromosomal bool) []SVType {
	if interchromosomal {
		if opposing {
			if o1 == o2 {
				return []SVType{TypeITrans}
			}
			return nil
		}
		if o1 != o2 {
			return []SVType{TypeTrans}
		}
		return nil
	}
	if opposing {
		if o1 == o2 {
			return []SVType{TypeInv}
		}
		return nil
	}
	if o1 == OrientLeft && o2 == OrientRight {
		return []SVType{TypeDel, TypeIns}
	}
	if o1 == OrientRight && o2 == OrientLeft {
		return []SVType{TypeDup}
	}
	return nil
}

// Classify lists the event types consistent with a pair's orientations,
// strands, and chromosomes. Unspecified orientations expand to every
// concrete combination that forms a legal rearrangement. The result is
// sorted so enumeration order never depends on map iteration.
func Classify(p BreakpointPair) ([]SVType, error) {
	set := map[SVType]bool{}
	for _, o1 := range expandOrient(p.Break1.Orient) {
		for _, o2 := range expandOrient(p.Break2.Orient) {
			for _, t := range comboTypes(o1, o2, p.OpposingStrands, p.Interchromosomal()) {
				set[t] = true
			}
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("classifying %v (opposing strands: %v): %w", p, p.OpposingStrands, ErrIllegalRearrangement)
	}
	types := lo.Keys(set)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types, nil
}
