// Package walloverlap compensates extrusion flow where wall toolpaths run
// closer together than one line width.
//
// When two pieces of wall are less than the nozzle width apart, depositing
// the nominal amount of material on both produces visible over-extrusion.
// This package detects such close approaches between polygon edges, inserts
// synthetic vertices bounding each overlap region, and computes, for any
// directed segment of a wall polygon, a flow multiplier in [0, 1] that
// compensates for the locally overlapping material.
package walloverlap

import "github.com/slicerbits/walloverlap/proximity"

type Point = proximity.Point
type Polygon = proximity.Polygon
type Linker = proximity.Linker
type Link = proximity.Link
type WallOverlap = proximity.WallOverlap

// New links the polygons at the given line width (micrometres) and prepares
// the flow computation. The polygons are mutated: after the call they contain
// the synthetic vertices bounding each overlap region, and paths should be
// generated from the mutated set.
func New(polygons []Polygon, lineWidth int64) *WallOverlap {
	return proximity.NewWallOverlap(polygons, lineWidth)
}
