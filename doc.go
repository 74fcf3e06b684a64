// Package waypath is a compact toolkit for single-source shortest-path
// routing over weighted graphs.
//
// 🚀 What is waypath?
//
//	A small, focused, pure-Go library built from three pieces:
//		• Graph store: handle-addressed vertices with weighted adjacency,
//		  directed or undirected, arena-backed
//		• Priority frontier: min-ordered candidate queues — a linear-scan
//		  list and a binary heap, interchangeable behind one interface
//		• Dijkstra engine: greedy shortest-path search with predecessor
//		  chains and forward route reconstruction
//
// ✨ Why choose waypath?
//
//   - Minimal API – build a graph, ask for a path, walk the route
//   - Explicit results – unreachable destinations are absent, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Swappable strategies – pick the frontier that fits your graph size
//
// Everything is organized under three subpackages:
//
//	core/     — Graph, Vertex, Edge and the vertex-handle arena
//	frontier/ — min-ordered candidate collections (scan & heap)
//	dijkstra/ — the shortest-path engine and route reconstruction
//
// Quick ASCII example:
//
//	    A──1000──B
//	    │        │
//	  2100      900
//	    │        │
//	    C───800──D
//
//	the cheapest route A→D runs A→B→C→D at total 2700.
//
//	go get github.com/katalvlaran/waypath
package waypath
