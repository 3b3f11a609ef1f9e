// Package gml reads and writes network topologies in GML (Graph Modelling
// Language), the attributed-graph format the FlowLM dataset files use.
//
// The dialect understood here is the usual nested key-value form:
//
//	graph [
//	  node [
//	    id 0
//	    label "0"
//	    x 0.4316
//	    y 0.1271
//	  ]
//	  edge [
//	    source 0
//	    target 3
//	    weight 2
//	    capacity 10
//	  ]
//	]
//
// Decode is tolerant of files produced by other tools: unknown keys are
// skipped, a node's label defaults to its decimal id, and a missing edge
// capacity defaults to DefaultCapacity (the harness's per-link budget), so
// weight-only files load cleanly. Encode always writes the full attribute
// set and emits vertices and edges in the graph's deterministic order, so
// encoding the same graph twice produces identical bytes.
package gml
