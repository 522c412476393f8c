package proximity

// Coordinates are micrometre-scale fixed point throughout. Points are value
// types with exact integer equality, which means they can be used directly as
// map keys. We never round a point that came in from the caller; synthetic
// vertices are computed in integer space so that re-running the linker on its
// own output is stable.
type Point struct {
	X, Y int64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Polygon is a closed ring of points. The edge from the last point back to the
// first is implicit.
type Polygon struct {
	Points []Point
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

type PolygonList []Polygon
