// Package compute implements the layout algorithms: the orchestrator that
// walks a tree with per-node memoization, the leaf resolver, the flexbox
// resolver, and the pixel rounding pass. Grid containers are delegated to
// the grid subpackage.
//
// All computation is synchronous. A tree must not be laid out from more than
// one goroutine at a time.
package compute
