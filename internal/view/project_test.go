package view

import (
	"reflect"
	"testing"

	"github.com/ynqa/logu/internal/drain"
)

func cluster(id uint64, size uint64, tokens ...string) drain.Cluster {
	return drain.Cluster{ID: id, Template: tokens, Size: size}
}

func ids(rows []drain.Cluster) []uint64 {
	out := make([]uint64, len(rows))
	for i, c := range rows {
		out[i] = c.ID
	}
	return out
}

func TestProjectSortsByCountThenID(t *testing.T) {
	clusters := []drain.Cluster{
		cluster(3, 7, "a"),
		cluster(1, 2, "b"),
		cluster(4, 7, "c"),
		cluster(2, 9, "d"),
	}

	rows := Project(clusters, Options{})

	if want := []uint64{2, 3, 4, 1}; !reflect.DeepEqual(ids(rows), want) {
		t.Fatalf("Project() order = %v, want %v", ids(rows), want)
	}
}

func TestProjectFiltersBySizeThreshold(t *testing.T) {
	clusters := []drain.Cluster{
		cluster(1, 1, "rare"),
		cluster(2, 2, "boundary"),
		cluster(3, 5, "common"),
	}

	rows := Project(clusters, Options{ClusterSizeTh: 2})

	if want := []uint64{3, 2}; !reflect.DeepEqual(ids(rows), want) {
		t.Fatalf("Project() = %v, want %v (size == threshold stays visible)", ids(rows), want)
	}
}

func TestProjectCapsRows(t *testing.T) {
	clusters := []drain.Cluster{
		cluster(1, 5, "a"),
		cluster(2, 4, "b"),
		cluster(3, 3, "c"),
	}

	tests := []struct {
		name string
		max  int
		want []uint64
	}{
		{name: "zero keeps everything", max: 0, want: []uint64{1, 2, 3}},
		{name: "cap keeps most frequent", max: 2, want: []uint64{1, 2}},
		{name: "cap above length is a no-op", max: 9, want: []uint64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Project(clusters, Options{MaxClusters: tt.max})
			if !reflect.DeepEqual(ids(rows), tt.want) {
				t.Errorf("Project() = %v, want %v", ids(rows), tt.want)
			}
		})
	}
}

func TestProjectLeavesInputAlone(t *testing.T) {
	clusters := []drain.Cluster{
		cluster(1, 1, "low"),
		cluster(2, 8, "high"),
	}

	Project(clusters, Options{ClusterSizeTh: 5, MaxClusters: 1})

	if clusters[0].ID != 1 || clusters[1].ID != 2 {
		t.Fatalf("Project() reordered its input: %v", ids(clusters))
	}
}

func TestProjectEmptySnapshot(t *testing.T) {
	if rows := Project(nil, Options{ClusterSizeTh: 3}); len(rows) != 0 {
		t.Fatalf("Project(nil) = %d rows, want 0", len(rows))
	}
}
