package main

import (
	"strings"
	"testing"
)

var gClusters = `1	1000	9000	L	R	cluster1
1	50	4000	?	?	cluster2
short	3
`

func TestClusterWindows(t *testing.T) {
	var out strings.Builder
	ClusterWindows(strings.NewReader(gClusters), &out, 500)

	want := `1	500	1001	break1	L	L	R	cluster1
1	8999	9500	break2	R	L	R	cluster1
1	1	550	break1	?	?	?	cluster2
1	3500	4500	break2	?	?	?	cluster2
`
	if out.String() != want {
		t.Errorf("ClusterWindows: got %q, want %q", out.String(), want)
	}
}
