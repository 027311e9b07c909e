// Package potfield synthesizes smooth random potential fields on square grids
// and navigates them from a start cell to the global minimum.
//
// What is in the box?
//
//	field/     : square float64 Grid, Coord, 8-neighbourhood, ArgMin and Stats
//	synth/     : Gaussian-feature synthesis: features, noise and a separable blur
//	descent/   : greedy steepest descent with a visited set and stall policies
//	route/     : A* least-cost path over the same 8-connected grid
//	config/    : YAML configuration with validation
//	service/   : session store and the gin HTTP API
//	cmd/potnav : CLI: generate, search, serve
//
// Pipeline:
//
//	seed ─► synth.Synthesize ─► *field.Grid ─► ArgMin (goal)
//	                                   │
//	               start ─► descent.Search / route.ShortestPath ─► Path
//
// Grids are indexed (row, col) everywhere; display x maps to col and y to row.
// Seeded synthesis is bit-for-bit reproducible.
//
//	go get github.com/katalvlaran/potfield
package potfield
