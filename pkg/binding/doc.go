// Package binding builds the marker binding index over a live document
// tree and pushes values into every bound location.
//
// Build walks the tree once. Text nodes holding markers are split so each
// marker starts its own node, and attributes holding a marker are
// registered together with a frozen copy of the element's attribute
// table. Update then rewrites every bound text node with the new value
// and recomputes bound attributes from their frozen templates.
//
// Nothing in this package is safe for concurrent use. Callers sharing an
// Index across goroutines must serialize Build and Update themselves.
package binding
