package proximity

// WallOverlap computes and compensates for overlapping wall lines. The
// overlapping area is approximated with connected trapezoids: all places
// where the wall comes closer than the line width to another piece of wall
// are recorded by the linker, and the area of a trapezoid is the length
// between two such places multiplied by the average overlap at them.
//
// When paths are generated, the first line crossing an overlap area is laid
// down normally and the second line is reduced by the overlap amount. Flow
// therefore changes internal state: each overlap quad is skipped on its first
// crossing and accounted for on the second. The passed state is tracked per
// unordered pair of links rather than per link, so a point participating in
// more than two links cannot double-count an area.
type WallOverlap struct {
	linker    *Linker
	lineWidth int64
	passed    map[passedKey]struct{}
}

// passedKey is an unordered pair of unordered link pairs.
type passedKey struct {
	a, b pairKey
}

func newPassedKey(linkA, linkB *Link) passedKey {
	ka := newPairKey(linkA.A, linkA.B)
	kb := newPairKey(linkB.A, linkB.B)
	if kb.less(ka) {
		ka, kb = kb, ka
	}
	return passedKey{ka, kb}
}

// NewWallOverlap links the polygons at the given line width and prepares the
// flow computation. polygons is mutated to include the inserted vertices; the
// caller should generate its paths from the mutated set.
func NewWallOverlap(polygons []Polygon, lineWidth int64) *WallOverlap {
	return &WallOverlap{
		linker:    NewLinker(polygons, lineWidth),
		lineWidth: lineWidth,
		passed:    make(map[passedKey]struct{}),
	}
}

// Linker exposes the underlying link graph.
func (wo *WallOverlap) Linker() *Linker {
	return wo.linker
}

// ResetPassed forgets which overlap areas have been crossed, so that a new
// traversal session can start from scratch.
func (wo *WallOverlap) ResetPassed() {
	wo.passed = make(map[passedKey]struct{})
}

// Flow returns the fraction of nominal extrusion to deposit on the directed
// wall segment from from to to, in [0, 1]. Segments must be fed in path
// order: within one session each ring vertex appears as to exactly once.
//
// The first time a given overlap area is crossed the flow is unaffected; the
// reduction lands entirely on the second crossing.
func (wo *WallOverlap) Flow(from, to Point) float32 {
	if !wo.linker.IsLinked(from) {
		return 1
	}
	toLinks := wo.linker.LinksAt(to)
	if len(toLinks) == 0 {
		return 1
	}

	var overlap int64
	for _, toLink := range toLinks {
		a, toOther, ok := orientLink(toLink, to, from)
		if !ok {
			// The link's node at to does not border the segment being
			// extruded. With coincident points a link can land in the index
			// under a point whose ring neighbourhood is elsewhere; such a
			// link belongs to some other segment's crossing.
			continue
		}

		fromRef := a.Prev()
		otherSide := toOther.Next()
		if fromRef.Point() != from {
			// The caller walks the ring against its stored direction; mirror
			// the neighbour choices.
			fromRef = a.Next()
			otherSide = toOther.Prev()
		}

		// A partner link bridging at the shared vertex on the to side.
		overlap += wo.handlePotentialOverlap(toLink, otherSide, a)
		// The trapezoid between this segment and the matching segment on the
		// other side.
		overlap += wo.handlePotentialOverlap(toLink, toOther, fromRef)
		overlap += wo.handlePotentialOverlap(toLink, otherSide, fromRef)
	}

	nominal := VSize(from.Sub(to)) * wo.lineWidth
	if nominal == 0 {
		return 1
	}
	flow := float32(nominal-overlap) / float32(nominal)
	if flow < 0 {
		return 0
	}
	if flow > 1 {
		return 1
	}
	return flow
}

// orientLink views link with its a endpoint at to, choosing an a whose ring
// neighbour (previous or next) is at from. Either endpoint of the link may be the one at to; for a
// distance-zero link both are.
func orientLink(link *Link, to, from Point) (a, other Ref, ok bool) {
	atTo := false
	for _, cand := range [2][2]Ref{{link.A, link.B}, {link.B, link.A}} {
		a, other = cand[0], cand[1]
		if a.Point() != to {
			continue
		}
		atTo = true
		if a.Prev().Point() == from || a.Next().Point() == from {
			return a, other, true
		}
	}
	if !atTo {
		// The index maps points to links on those points; a link that ends
		// up here under a foreign point means the index is corrupt.
		panic("proximity: link indexed at a point on neither endpoint")
	}
	return Ref{}, Ref{}, false
}

// handlePotentialOverlap checks whether from and to carry a link that forms a
// single overlap quad together with linkA, and returns the approximate quad
// area. The first crossing of a quad only marks it and returns zero.
func (wo *WallOverlap) handlePotentialOverlap(linkA *Link, from, to Ref) int64 {
	linkB := wo.linker.LinkBetween(from, to)
	if linkB == nil || linkB == linkA {
		return 0
	}
	key := newPassedKey(linkA, linkB)
	if _, done := wo.passed[key]; !done {
		wo.passed[key] = struct{}{}
		return 0
	}
	return approxOverlapArea(linkA, linkB, wo.lineWidth)
}

// approxOverlapArea approximates the area of the overlap quad bounded by the
// two links: the distance between the links' midpoints times the average
// overlap width at the two rails. Computed on doubled midpoints to stay in
// integer space.
func approxOverlapArea(linkA, linkB *Link, lineWidth int64) int64 {
	from := linkA.A.Point().Add(linkA.B.Point())
	to := linkB.A.Point().Add(linkB.B.Point())
	overlapWidth2 := 2*lineWidth - linkA.Dist - linkB.Dist
	return VSize(from.Sub(to)) * overlapWidth2 / 4
}
