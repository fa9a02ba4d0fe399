package svcall

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jgbaldwinbrown/csvh"
)

type Flags struct {
	Input string
	Threads int
	JsonOut bool
	EventType string
}

func GetFlags() (f Flags) {
	flag.StringVar(&f.Input, "i", "", "Evidence input path, .json or .json.gz (default stdin).")
	flag.IntVar(&f.Threads, "t", -1, "Threads to use (default infinite).")
	flag.BoolVar(&f.JsonOut, "j", false, "Output as JSON instead of a tab-separated table.")
	flag.StringVar(&f.EventType, "e", "", "Only call this event type (default all putative types).")
	flag.Parse()
	return
}

// One output row of the call table, also the JSON output shape.
type CallRow struct {
	Cluster int
	EventType string
	Chrom1 string
	Start1 int64
	End1 int64
	Orient1 string
	Strand1 string
	Chrom2 string
	Start2 int64
	End2 int64
	Orient2 string
	Strand2 string
	OpposingStrands bool
	Method1 string
	Method2 string
	UntemplatedSeq string
	FlankingPairs int
	FlankingMedian float64
	FlankingStdev float64
	Split1 int
	Split1Forced int
	Split2 int
	Split2Forced int
	LinkingSplit int
	Err string
}

func CallToRow(cluster int, eventType SVType, c *EventCall) CallRow {
	row := CallRow{
		Cluster: cluster,
		EventType: string(eventType),
		Chrom1: c.Break1.Chrom,
		Start1: c.Break1.Start,
		End1: c.Break1.End,
		Orient1: c.Break1.Orient.String(),
		Strand1: StrandString(c.Break1.Strand),
		Chrom2: c.Break2.Chrom,
		Start2: c.Break2.Start,
		End2: c.Break2.End,
		Orient2: c.Break2.Orient.String(),
		Strand2: StrandString(c.Break2.Strand),
		OpposingStrands: c.OpposingStrands,
		Method1: c.Methods.Break1.String(),
		Method2: c.Methods.Break2.String(),
		UntemplatedSeq: c.UntemplatedSeq,
	}
	row.FlankingPairs, row.FlankingMedian, row.FlankingStdev = c.CountFlankingSupport()
	row.Split1, row.Split1Forced, row.Split2, row.Split2Forced, row.LinkingSplit = c.CountSplitReadSupport()
	return row
}

func ResultRows(results []Result) []CallRow {
	var rows []CallRow
	for _, res := range results {
		if res.Err != nil {
			rows = append(rows, CallRow{
				Cluster: res.Index,
				EventType: string(res.EventType),
				Err: res.Err.Error(),
			})
			continue
		}
		for _, c := range res.Calls {
			rows = append(rows, CallToRow(res.Index, res.EventType, c))
		}
	}
	return rows
}

func FprintHeader(w io.Writer) {
	fmt.Fprintln(w, "cluster\tevent_type\tchrom1\tstart1\tend1\torient1\tstrand1\tchrom2\tstart2\tend2\torient2\tstrand2\topposing\tcall_method1\tcall_method2\tuntemplated_seq\tflanking_pairs\tflanking_median\tflanking_stdev\tsplit1\tsplit1_forced\tsplit2\tsplit2_forced\tlinking_split\terror")
}

func FprintRows(w io.Writer, rows []CallRow) {
	FprintHeader(w)
	format_string := "%d\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%v\t%s\t%s\t%s\t%d\t%.8g\t%.8g\t%d\t%d\t%d\t%d\t%d\t%s\n"
	for _, r := range rows {
		fmt.Fprintf(w,
			format_string,
			r.Cluster,
			r.EventType,
			r.Chrom1,
			r.Start1,
			r.End1,
			r.Orient1,
			r.Strand1,
			r.Chrom2,
			r.Start2,
			r.End2,
			r.Orient2,
			r.Strand2,
			r.OpposingStrands,
			r.Method1,
			r.Method2,
			r.UntemplatedSeq,
			r.FlankingPairs,
			r.FlankingMedian,
			r.FlankingStdev,
			r.Split1,
			r.Split1Forced,
			r.Split2,
			r.Split2Forced,
			r.LinkingSplit,
			r.Err,
		)
	}
}

func FprintRowsJson(w io.Writer, rows []CallRow) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if e := enc.Encode(r); e != nil {
			return e
		}
	}
	return nil
}

func RunCalls(flags Flags, r io.Reader, w io.Writer) error {
	evs, e := CollectEvidence(r)
	if e != nil {
		return e
	}
	for _, ev := range evs {
		ev.AlignCall = PairedAlignCall
	}

	results, e := CallMulti(context.Background(), flags.Threads, evs...)
	if e != nil {
		return e
	}
	if flags.EventType != "" {
		var kept []Result
		for _, res := range results {
			if string(res.EventType) == flags.EventType {
				kept = append(kept, res)
			}
		}
		results = kept
	}

	rows := ResultRows(results)
	if flags.JsonOut {
		return FprintRowsJson(w, rows)
	}
	FprintRows(w, rows)
	return nil
}

func FullSvcall() {
	flags := GetFlags()

	var r io.Reader = os.Stdin
	if flags.Input != "" {
		in, e := csvh.OpenMaybeGz(flags.Input)
		if e != nil {
			log.Fatal(e)
		}
		defer in.Close()
		r = in
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if e := RunCalls(flags, r, w); e != nil {
		log.Fatal(e)
	}
}
