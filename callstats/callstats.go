package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/lscan/pkg"
	"github.com/montanaflynn/stats"
)

// Summarize a call table: how many calls each method pair and event type
// produced, how many clusters failed outright, and the median support
// behind the resolved calls.

type CallTableStats struct {
	Path string
	MethodCounts map[string]int
	TypeCounts map[string]int
	FailCount int
	CallCount int
	FlankingSupports []float64
	SplitSupports []float64
}

var tabSplit = lscan.ByByte('\t')

func ParseFloatCol(line []string, col int) (float64, bool) {
	if len(line) <= col {
		return 0, false
	}
	f, e := strconv.ParseFloat(line[col], 64)
	if e != nil {
		return 0, false
	}
	return f, true
}

func CallStats(path string, r io.Reader) CallTableStats {
	out := CallTableStats{
		Path: path,
		MethodCounts: map[string]int{},
		TypeCounts: map[string]int{},
	}
	var line []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0), 1e9)
	first := true
	for s.Scan() {
		line = lscan.SplitByFunc(line, s.Text(), tabSplit)
		if first {
			first = false
			continue
		}
		if len(line) < 24 {
			continue
		}
		if len(line) > 24 && line[24] != "" {
			out.FailCount++
			continue
		}
		out.CallCount++
		out.MethodCounts[line[13]+" + "+line[14]]++
		out.TypeCounts[line[1]]++
		if f, ok := ParseFloatCol(line, 16); ok {
			out.FlankingSupports = append(out.FlankingSupports, f)
		}
		if f, ok := ParseFloatCol(line, 19); ok {
			out.SplitSupports = append(out.SplitSupports, f)
		}
	}
	return out
}

func FprintSortedCounts(w io.Writer, name string, counts map[string]int) {
	var keys []string
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s %s: %d\n", name, k, counts[k])
	}
}

func FprintCallStats(w io.Writer, c CallTableStats) {
	if c.Path != "" {
		fmt.Fprintf(w, "File: %s\n", c.Path)
	}
	fmt.Fprintf(w, "calls: %d\n", c.CallCount)
	fmt.Fprintf(w, "failed: %d\n", c.FailCount)
	FprintSortedCounts(w, "method", c.MethodCounts)
	FprintSortedCounts(w, "type", c.TypeCounts)
	if m, e := stats.Median(c.FlankingSupports); e == nil {
		fmt.Fprintf(w, "median flanking support: %.8g\n", m)
	}
	if m, e := stats.Median(c.SplitSupports); e == nil {
		fmt.Fprintf(w, "median split support: %.8g\n", m)
	}
}

func main() {
	inpath := flag.String("i", "", "Call table path, may be gzipped (default stdin).")
	flag.Parse()

	if *inpath == "" {
		FprintCallStats(os.Stdout, CallStats("", os.Stdin))
		return
	}
	r, e := csvh.OpenMaybeGz(*inpath)
	if e != nil {
		log.Fatal(e)
	}
	defer r.Close()
	FprintCallStats(os.Stdout, CallStats(*inpath, r))
}
