// Package view projects cluster snapshots into display order.
//
// # Overview
//
// The renderer never walks the live tree. Each render tick it takes a copied
// snapshot from the store and runs Project over it: filter out clusters below
// the configured size threshold, sort by match count descending (ties to the
// older cluster), and cap the row count. The projection is a pure function,
// so identical snapshots always produce identical screens.
//
// # Determinism
//
// Cluster ids are unique and creation-ordered, which makes the (count, id)
// sort key total: there is exactly one valid order for any snapshot, and
// repeated runs over the same input render identically. The display cap is
// applied after sorting so the most frequent clusters always survive it.
package view
