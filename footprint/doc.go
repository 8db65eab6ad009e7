// Package footprint maps a rectangular w×h robot onto a point robot by
// inflating obstacles into configuration space.
//
// Inflate grows every obstacle cell by the robot half-extents
// mv=(h−1)/2 vertically and mh=(w−1)/2 horizontally, clamped at grid
// borders, producing a derived Grid in which the robot can be planned
// for as a single cell. Collides answers the dual question directly on
// the original grid: does the full footprint centred at a cell overlap
// an obstacle or leave the map?
//
// Both operations are pure and deterministic; a 1×1 robot makes Inflate
// an exact copy.
package footprint
