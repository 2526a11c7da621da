package drain

import (
	"strings"
	"unicode"
)

// Defaults follow the conventional Drain parameterization.
const (
	DefaultSimTh        = 0.4
	DefaultMaxNodeDepth = 2
	DefaultMaxChildren  = 100
	DefaultParamStr     = "<*>"
)

// Options tune how aggressively the tree generalizes lines into templates.
type Options struct {
	// SimTh is the minimum fraction of matching token positions for a line
	// to join an existing cluster instead of starting a new one.
	SimTh float64
	// MaxNodeDepth bounds the token-keyed levels beneath the length level.
	// Zero keys leaves directly under their length bucket.
	MaxNodeDepth int
	// MaxChildren bounds the exact-match branches per internal node. The
	// shared wildcard branch sits outside the bound.
	MaxChildren int
	// MaxClusters bounds how many clusters one leaf retains; zero retains
	// all of them.
	MaxClusters int
	// ParamStr is the wildcard marker written into generalized template
	// positions and used as the overflow branch key.
	ParamStr string
	// ParametrizeNumbers routes tokens containing digits through the
	// wildcard branch, keeping counters and identifiers out of branch keys.
	ParametrizeNumbers bool
}

// DefaultOptions returns the conventional parameterization.
func DefaultOptions() Options {
	return Options{
		SimTh:        DefaultSimTh,
		MaxNodeDepth: DefaultMaxNodeDepth,
		MaxChildren:  DefaultMaxChildren,
		ParamStr:     DefaultParamStr,
	}
}

func (o Options) normalized() Options {
	if o.SimTh <= 0 {
		o.SimTh = DefaultSimTh
	}
	if o.MaxNodeDepth < 0 {
		o.MaxNodeDepth = 0
	}
	if o.MaxChildren < 1 {
		o.MaxChildren = DefaultMaxChildren
	}
	if o.MaxClusters < 0 {
		o.MaxClusters = 0
	}
	if o.ParamStr == "" {
		o.ParamStr = DefaultParamStr
	}
	return o
}

// Tree is a fixed-depth parse tree that clusters tokenized log lines into
// templates as they arrive. Lines route first by token count, then through a
// bounded number of token-keyed levels, and land in a leaf whose clusters
// they are scored against. Tree is not safe for concurrent use; callers
// serialize access.
type Tree struct {
	opts    Options
	lengths map[int]*node
	nextID  uint64
	size    int
}

type node struct {
	children map[string]*node
	clusters []*Cluster
}

// New returns an empty tree configured by opts; DefaultOptions is the usual
// starting point. An empty ParamStr and out-of-range numeric fields fall
// back to the package defaults.
func New(opts Options) *Tree {
	return &Tree{opts: opts.normalized(), lengths: make(map[int]*node)}
}

// Options returns the normalized options the tree runs with.
func (t *Tree) Options() Options {
	return t.opts
}

// Len reports the number of live clusters across all leaves.
func (t *Tree) Len() int {
	return t.size
}

// Train clusters one tokenized line. The line joins the most similar cluster
// in its leaf, widening every mismatched template position to the wildcard
// marker, or becomes a new cluster when nothing scores at or above SimTh.
// seq is the caller's ingestion sequence number and drives
// least-recently-matched eviction. Train reports the id of the cluster the
// line landed in and whether this call created it. The tokens slice is not
// retained.
func (t *Tree) Train(tokens []string, seq uint64) (id uint64, created bool) {
	leaf := t.route(tokens)
	if c := t.bestMatch(leaf, tokens); c != nil {
		for i, tok := range tokens {
			if c.Template[i] != tok {
				c.Template[i] = t.opts.ParamStr
			}
		}
		c.Size++
		c.LastSeq = seq
		return c.ID, false
	}
	return t.insert(leaf, tokens, seq).ID, true
}

// Clusters copies every live cluster out of the tree. Order is unspecified.
func (t *Tree) Clusters() []Cluster {
	out := make([]Cluster, 0, t.size)
	for _, root := range t.lengths {
		root.appendClusters(&out)
	}
	return out
}

func (n *node) appendClusters(out *[]Cluster) {
	for _, c := range n.clusters {
		dup := *c
		dup.Template = append([]string(nil), c.Template...)
		*out = append(*out, dup)
	}
	for _, child := range n.children {
		child.appendClusters(out)
	}
}

// route descends from the length bucket through the token-keyed levels and
// returns the leaf for tokens, creating nodes along the way.
func (t *Tree) route(tokens []string) *node {
	cur, ok := t.lengths[len(tokens)]
	if !ok {
		cur = &node{}
		t.lengths[len(tokens)] = cur
	}
	for depth := 0; depth < t.levelsFor(len(tokens)); depth++ {
		cur = t.child(cur, tokens[depth])
	}
	return cur
}

// levelsFor reports how many token-keyed levels a line of the given length
// descends. The final token never keys a level, so short lines stop early
// and single-token lines cluster directly under their length bucket.
func (t *Tree) levelsFor(length int) int {
	levels := min(t.opts.MaxNodeDepth, length) - 1
	if levels < 0 {
		return 0
	}
	return levels
}

// child returns the next node beneath cur for token, creating it while cur
// has spare exact capacity and otherwise falling through to the shared
// wildcard branch.
func (t *Tree) child(cur *node, token string) *node {
	key := token
	if t.opts.ParametrizeNumbers && hasNumber(token) {
		key = t.opts.ParamStr
	}
	if next, ok := cur.children[key]; ok {
		return next
	}
	if key != t.opts.ParamStr && t.exactChildren(cur) >= t.opts.MaxChildren {
		key = t.opts.ParamStr
		if next, ok := cur.children[key]; ok {
			return next
		}
	}
	next := &node{}
	if cur.children == nil {
		cur.children = make(map[string]*node)
	}
	cur.children[key] = next
	return next
}

// exactChildren counts the branches keyed by literal tokens, excluding the
// wildcard branch.
func (t *Tree) exactChildren(n *node) int {
	count := len(n.children)
	if _, ok := n.children[t.opts.ParamStr]; ok {
		count--
	}
	return count
}

// bestMatch returns the leaf cluster with the highest similarity at or above
// SimTh, ties broken toward the lowest id, or nil when nothing qualifies.
func (t *Tree) bestMatch(leaf *node, tokens []string) *Cluster {
	var best *Cluster
	bestSim := -1.0
	for _, c := range leaf.clusters {
		sim := t.similarity(c.Template, tokens)
		if sim < t.opts.SimTh {
			continue
		}
		if best == nil || sim > bestSim || (sim == bestSim && c.ID < best.ID) {
			best = c
			bestSim = sim
		}
	}
	return best
}

// similarity is the fraction of positions where the template holds the same
// literal as the line or already holds the wildcard marker. Both sequences
// have the leaf's length; two empty sequences are identical.
func (t *Tree) similarity(template, tokens []string) float64 {
	if len(tokens) == 0 {
		return 1
	}
	matched := 0
	for i, tok := range tokens {
		if template[i] == tok || template[i] == t.opts.ParamStr {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}

func (t *Tree) insert(leaf *node, tokens []string, seq uint64) *Cluster {
	if t.opts.MaxClusters > 0 && len(leaf.clusters) >= t.opts.MaxClusters {
		t.evictOldest(leaf)
	}
	t.nextID++
	c := &Cluster{
		ID:       t.nextID,
		Template: append([]string(nil), tokens...),
		Size:     1,
		LastSeq:  seq,
	}
	leaf.clusters = append(leaf.clusters, c)
	t.size++
	return c
}

// evictOldest drops the leaf cluster whose most recent match is furthest in
// the past by ingestion sequence.
func (t *Tree) evictOldest(leaf *node) {
	oldest := 0
	for i, c := range leaf.clusters {
		if c.LastSeq < leaf.clusters[oldest].LastSeq {
			oldest = i
		}
	}
	leaf.clusters = append(leaf.clusters[:oldest], leaf.clusters[oldest+1:]...)
	t.size--
}

func hasNumber(s string) bool {
	return strings.ContainsFunc(s, unicode.IsNumber)
}
