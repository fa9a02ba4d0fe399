package svcall

import (
	"context"
	"encoding/json"
	"io"

	"github.com/jgbaldwinbrown/iter"
	"golang.org/x/sync/errgroup"
)

// One resolved (evidence, event type) job. Err holds the resolution
// failure for this job; it does not abort the batch.
type Result struct {
	Index int
	Evidence *Evidence
	EventType SVType
	Calls []*EventCall
	Err error
}

// Stream evidence records from a JSON document stream.
func EvidenceIter(r io.Reader) *iter.Iterator[*Evidence] {
	return &iter.Iterator[*Evidence]{Iteratef: func(yield func(*Evidence) error) error {
		dec := json.NewDecoder(r)
		for {
			ev := new(Evidence)
			e := dec.Decode(ev)
			if e == io.EOF {
				return nil
			}
			if e != nil {
				return e
			}
			if e := yield(ev); e != nil {
				return e
			}
		}
	}}
}

func CollectEvidence(r io.Reader) ([]*Evidence, error) {
	return iter.Collect[*Evidence](EvidenceIter(r))
}

// CallMulti resolves every putative event type of every evidence record.
// Records are independent, so jobs fan out across workers; the result
// order is fixed by the input order regardless of scheduling.
func CallMulti(ctx context.Context, threads int, evs ...*Evidence) ([]Result, error) {
	var jobs []Result
	for i, ev := range evs {
		for _, t := range ev.PutativeEventTypes() {
			jobs = append(jobs, Result{Index: i, Evidence: ev, EventType: t})
		}
	}

	g, ctx2 := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i := range jobs {
		i := i
		g.Go(func() error {
			if e := ctx2.Err(); e != nil {
				return e
			}
			jobs[i].Calls, jobs[i].Err = CallEvents(jobs[i].Evidence, jobs[i].EventType)
			return nil
		})
	}
	if e := g.Wait(); e != nil {
		return nil, e
	}
	return jobs, nil
}
