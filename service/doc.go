// Package service is the interaction collaborator around the field and
// search packages: it keeps generated fields in memory, turns display-space
// clicks into grid cells, recomputes the goal as the field's global minimum
// before every search and exposes all of it over HTTP.
//
// Routes (under the group passed to RegisterRoutes):
//
//	POST   /fields             regenerate: synthesize and store a new field
//	GET    /fields/:id         metadata, optionally ?values=true for the grid
//	DELETE /fields/:id         drop a stored field
//	POST   /fields/:id/paths   search from a start cell to the current minimum
//
// Fields live only in process memory; the oldest is evicted once
// ServerConfig.MaxFields is exceeded.
package service
