// Package bta implements the bidirected topology algebra: the pure value
// types and functions over node sides and links that every other package in
// seqgraph builds on.
//
// A bidirected graph connects oriented sides of nodes rather than the nodes
// themselves. Every node has two sides, Start and End; an edge (a Link) runs
// from one side to another, and the pair of side tags it connects is encoded
// as a LinkType in {0,1,2,3}:
//
//	type = (from_tag << 1) | to_tag     // Start=0, End=1
//
// Nothing in this package touches storage: it is safe to call concurrently
// from any number of goroutines, and every function is a pure computation
// over its arguments.
package bta
