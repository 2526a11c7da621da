package drain

import "strings"

// Cluster is one mined template together with its occurrence statistics.
type Cluster struct {
	// ID is assigned in creation order and never reused, so lower ids are
	// older clusters.
	ID uint64
	// Template holds one token per position. Positions that have been
	// generalized hold the configured wildcard marker instead of a literal.
	Template []string
	// Size counts every line the cluster absorbed, including the line that
	// created it.
	Size uint64
	// LastSeq is the ingestion sequence number of the most recent line that
	// matched. Leaves evict their smallest LastSeq first when full.
	LastSeq uint64
}

// String renders the template as a single spaced line.
func (c Cluster) String() string {
	return strings.Join(c.Template, " ")
}
