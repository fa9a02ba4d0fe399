package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/fasttsv"

	"svcall/go_svcall/pkg"
)

// Expand clustered SV regions into the breakpoint search windows the
// evidence gatherer should fetch reads from. Each cluster row yields one
// window per side, padded by the fragment-size slack, tagged with the
// side and its orientation.

func ParseClusterLine(l []string) (b fastats.BedEntry[[]string], e error) {
	if len(l) < 3 {
		e = fmt.Errorf("cluster line too short: %v", l)
		return
	}
	b.Chr = l[0]
	b.Start, e = strconv.ParseInt(l[1], 0, 64)
	if e != nil {
		return
	}
	b.End, e = strconv.ParseInt(l[2], 0, 64)
	if e != nil {
		return
	}
	if len(l) > 3 {
		b.Fields = append([]string{}, l[3:]...)
	}
	return
}

func sideOrient(b fastats.BedEntry[[]string], field int) svcall.Orient {
	if len(b.Fields) > field {
		return svcall.ParseOrient(b.Fields[field])
	}
	return svcall.OrientNS
}

// The window one side's reads should be collected from. An oriented side
// only needs slack on the retained side of the position; an unoriented
// side gets slack both ways.
func SideWindow(chrom string, pos int64, o svcall.Orient, slack int64) fastats.BedEntry[[]string] {
	start := pos - slack
	end := pos + slack
	switch o {
	case svcall.OrientLeft:
		start = pos - slack
		end = pos + 1
	case svcall.OrientRight:
		start = pos - 1
		end = pos + slack
	}
	if start < 1 {
		start = 1
	}
	return fastats.BedEntry[[]string]{ChrSpan: fastats.ChrSpan{Chr: chrom, Span: fastats.Span{Start: start, End: end}}}
}

func Windows(b fastats.BedEntry[[]string], slack int64) (w1, w2 fastats.BedEntry[[]string]) {
	o1 := sideOrient(b, 0)
	o2 := sideOrient(b, 1)

	w1 = SideWindow(b.Chr, b.Start, o1, slack)
	w1.Fields = append([]string{"break1", o1.String()}, b.Fields...)

	w2 = SideWindow(b.Chr, b.End, o2, slack)
	w2.Fields = append([]string{"break2", o2.String()}, b.Fields...)

	return
}

func FprintEntry(w io.Writer, b fastats.BedEntry[[]string]) {
	fmt.Fprintf(w, "%v\t%v\t%v", b.Chr, b.Start, b.End)
	for _, f := range b.Fields {
		fmt.Fprintf(w, "\t%v", f)
	}
	fmt.Fprintln(w, "")
}

func ClusterWindows(r io.Reader, w io.Writer, slack int64) {
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		b, err := ParseClusterLine(s.Line())
		if err != nil {
			continue
		}

		w1, w2 := Windows(b, slack)
		FprintEntry(w, w1)
		FprintEntry(w, w2)
	}
}

func main() {
	inpath := flag.String("i", "", "Input cluster bed path, may be gzipped (default stdin).")
	slack := flag.Int("d", 5000, "Fragment-size slack to pad each breakpoint window by.")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *inpath != "" {
		in, e := csvh.OpenMaybeGz(*inpath)
		if e != nil {
			log.Fatal(e)
		}
		defer in.Close()
		r = in
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	ClusterWindows(r, w, int64(*slack))
}
