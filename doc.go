// Package parabel trains a forest of label-partitioning trees for extreme
// multi-label classification: each tree recursively splits a large label
// space into balanced halves via spherical 2-means over label centroids
// (see the cluster package), and every node carries a one-vs-rest linear
// classifier (see the linear package) that either routes an example toward
// the relevant children or scores it against the leaf's label set.
//
// Training is the only concern this package addresses; inference,
// persistence and dataset ingestion from any particular file format are
// left to the caller. Train is the single entry point; everything else
// (DataSet, HyperParam, Model) is the data passed across that boundary.
package parabel
