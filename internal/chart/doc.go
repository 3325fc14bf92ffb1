// Package chart implements the visualize stage: it renders the summary
// metrics as a fixed-size 2x2 dashboard PNG.
//
// The two bar panels (outcome counts and epidemiological rates) are
// rendered with github.com/wcharczuk/go-chart/v2 and composed onto a
// single RGBA canvas; the two text panels and the dashboard title are
// drawn directly with golang.org/x/image/font. The renderer never fails
// on degenerate data: with an all-zero metrics bundle the count axis
// spans 0-1 and the rate axis falls back to the fixed 0-100 range.
package chart
