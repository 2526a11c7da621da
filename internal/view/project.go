package view

import (
	"sort"

	"github.com/ynqa/logu/internal/drain"
)

// Options control which clusters a projection keeps and how many it shows.
type Options struct {
	// ClusterSizeTh hides clusters matched fewer times than this.
	ClusterSizeTh uint64
	// MaxClusters caps the projected rows; zero shows all of them.
	MaxClusters int
}

// Project orders a cluster snapshot for display. Clusters below the size
// threshold drop out, the rest sort by match count descending with ties
// going to the lower (older) id, and the result is truncated to MaxClusters
// rows. The input slice is not modified.
func Project(clusters []drain.Cluster, opts Options) []drain.Cluster {
	rows := make([]drain.Cluster, 0, len(clusters))
	for _, c := range clusters {
		if c.Size < opts.ClusterSizeTh {
			continue
		}
		rows = append(rows, c)
	}

	// Size ties break on id, which is unique, so the order is total and
	// stable across runs.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Size != rows[j].Size {
			return rows[i].Size > rows[j].Size
		}
		return rows[i].ID < rows[j].ID
	})

	if opts.MaxClusters > 0 && len(rows) > opts.MaxClusters {
		rows = rows[:opts.MaxClusters]
	}
	return rows
}
