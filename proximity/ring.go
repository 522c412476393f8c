package proximity

// Ring is a polygon as a doubly-linked cyclic list of points, backed by an
// arena so that references stay valid across insertions. Nodes live in a
// slice; prev/next are indices into it. Inserting a node appends to the arena
// and patches two indices, so no existing Ref is ever invalidated.
type Ring struct {
	index int // position of this ring among the linker's rings
	nodes []ringNode
}

type ringNode struct {
	point      Point
	prev, next int32
}

func NewRing(index int, points []Point) *Ring {
	n := len(points)
	r := &Ring{index: index, nodes: make([]ringNode, n, 2*n)}
	for i, p := range points {
		r.nodes[i] = ringNode{
			point: p,
			prev:  int32((i + n - 1) % n),
			next:  int32((i + 1) % n),
		}
	}
	return r
}

func (r *Ring) Len() int {
	return len(r.nodes)
}

// Head is the reference the ring's traversal starts from: the first input
// point.
func (r *Ring) Head() Ref {
	return Ref{Ring: r, Index: 0}
}

// InsertBefore inserts a new node with point p immediately before the node at
// index at, and returns the new node's index. All existing indices remain
// valid.
func (r *Ring) InsertBefore(at int32, p Point) int32 {
	prev := r.nodes[at].prev
	idx := int32(len(r.nodes))
	r.nodes = append(r.nodes, ringNode{point: p, prev: prev, next: at})
	r.nodes[prev].next = idx
	r.nodes[at].prev = idx
	return idx
}

// Polygon flattens the ring back into a point slice, in traversal order from
// the head.
func (r *Ring) Polygon() Polygon {
	points := make([]Point, 0, len(r.nodes))
	it := r.Head()
	for {
		points = append(points, it.Point())
		it = it.Next()
		if it == r.Head() {
			break
		}
	}
	return Polygon{Points: points}
}

// Ref is a stable handle to one node of one ring. Refs are comparable: two
// refs are equal iff they address the same node of the same ring, which also
// makes them usable as map keys.
type Ref struct {
	Ring  *Ring
	Index int32
}

func (it Ref) Point() Point {
	return it.Ring.nodes[it.Index].point
}

func (it Ref) Next() Ref {
	return Ref{Ring: it.Ring, Index: it.Ring.nodes[it.Index].next}
}

func (it Ref) Prev() Ref {
	return Ref{Ring: it.Ring, Index: it.Ring.nodes[it.Index].prev}
}

// less orders refs by (ring index, node index). Used to canonicalise
// unordered pairs.
func (it Ref) less(other Ref) bool {
	if it.Ring.index != other.Ring.index {
		return it.Ring.index < other.Ring.index
	}
	return it.Index < other.Index
}

func ringsFromPolygons(polygons []Polygon) []*Ring {
	rings := make([]*Ring, len(polygons))
	for i, poly := range polygons {
		rings[i] = NewRing(i, poly.Points)
	}
	return rings
}
